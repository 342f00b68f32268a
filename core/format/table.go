package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/directdb/directdb/core"
)

var _ core.Formatter = (*Table)(nil)

// Table renders an aligned text table without outer border. The first column
// holds the 1-based row number, counted from opts.ChunkStart.
type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

func (tf *Table) Format(header core.Header, rows []core.Row, opts *core.FormatterOptions) ([]byte, error) {
	tableHeader := table.Row{""}
	for _, h := range header {
		tableHeader = append(tableHeader, h)
	}

	index := 0
	if opts != nil {
		index = opts.ChunkStart
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRow := table.Row{index + i + 1}
		for _, val := range row {
			tableRow = append(tableRow, cellString(val))
		}
		tableRows[i] = tableRow
	}

	t := table.NewWriter()
	t.AppendHeader(tableHeader)
	t.AppendRows(tableRows)
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	t.SuppressTrailingSpaces()

	return []byte(t.Render()), nil
}
