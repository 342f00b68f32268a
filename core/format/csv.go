package format

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/directdb/directdb/core"
)

var _ core.Formatter = (*CSV)(nil)

// CSV renders a header line followed by one line per row.
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(header core.Header, rows []core.Row, _ *core.FormatterOptions) ([]byte, error) {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, header)

	for _, row := range rows {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = cellString(val)
		}
		data = append(data, record)
	}

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	err := w.WriteAll(data)
	if err != nil {
		return nil, fmt.Errorf("w.WriteAll: %w", err)
	}

	return b.Bytes(), nil
}

// cellString prints NULL as an empty cell and bytes as text.
func cellString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
