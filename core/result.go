package core

import (
	"fmt"
)

var ErrInvalidRange = func(from, to int) error { return fmt.Errorf("invalid selection range: %d ... %d", from, to) }

// Result is the drained form of the ResultStream iterator
type Result struct {
	header Header
	rows   []Row
}

// NewResult creates a result from already fetched rows.
func NewResult(header Header, rows []Row) *Result {
	if rows == nil {
		rows = []Row{}
	}
	return &Result{
		header: header,
		rows:   rows,
	}
}

// ResultFromStream drains the iterator and closes it.
func ResultFromStream(iter ResultStream) (*Result, error) {
	defer iter.Close()

	cr := &Result{
		header: iter.Header(),
		rows:   make([]Row, 0),
	}

	for iter.HasNext() {
		row, err := iter.Next()
		if err != nil {
			return nil, err
		}

		cr.rows = append(cr.rows, row)
	}

	// streams backed by driver cursors report iteration errors separately
	if e, ok := iter.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return nil, err
		}
	}

	return cr, nil
}

func (cr *Result) Format(formatter Formatter, from, to int) ([]byte, error) {
	rows, fromAdjusted, _, err := cr.getRows(from, to)
	if err != nil {
		return nil, fmt.Errorf("cr.getRows: %w", err)
	}

	opts := &FormatterOptions{
		ChunkStart: fromAdjusted,
	}

	f, err := formatter.Format(cr.header, rows, opts)
	if err != nil {
		return nil, fmt.Errorf("formatter.Format: %w", err)
	}

	return f, nil
}

func (cr *Result) Len() int {
	return len(cr.rows)
}

func (cr *Result) Header() Header {
	return cr.header
}

// All returns every row.
func (cr *Result) All() []Row {
	return cr.rows
}

// Rows returns a range of rows. Negative indexes count from the end,
// so Rows(0, -1) returns everything.
func (cr *Result) Rows(from, to int) ([]Row, error) {
	rows, _, _, err := cr.getRows(from, to)
	return rows, err
}

// getRows returns the row range and adjusted from-to values
func (cr *Result) getRows(from, to int) (rows []Row, rangeFrom, rangeTo int, err error) {
	if (from < 0 && to < 0) || (from >= 0 && to >= 0) {
		if from > to {
			return nil, 0, 0, ErrInvalidRange(from, to)
		}
	}
	// undefined -> error
	if from < 0 && to >= 0 {
		return nil, 0, 0, ErrInvalidRange(from, to)
	}

	length := len(cr.rows)
	if from < 0 {
		from += length + 1
		if from < 0 {
			from = 0
		}
	}
	if to < 0 {
		to += length + 1
		if to < 0 {
			to = 0
		}
	}

	if from > length {
		from = length
	}
	if to > length {
		to = length
	}

	return cr.rows[from:to], from, to, nil
}
