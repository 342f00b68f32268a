package adapters

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// call is a statement received by fakePool.
type call struct {
	sql  string
	args []any
}

// fakePool is an in-memory pgxPool. Exec answers with tag, Query with rows.
type fakePool struct {
	mu    sync.Mutex
	calls []call

	tag      string
	execErr  error
	queryErr error
	pingErr  error
	header   []string
	rows     [][]any
	rowsErr  error
	closed   bool
}

var _ pgxPool = (*fakePool)(nil)

func (p *fakePool) record(sql string, args []any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{sql: sql, args: args})
}

func (p *fakePool) Calls() []call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]call(nil), p.calls...)
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.record(sql, args)
	if p.execErr != nil {
		return pgconn.CommandTag{}, p.execErr
	}
	return pgconn.NewCommandTag(p.tag), nil
}

func (p *fakePool) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	p.record(sql, args)
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	return &fakeRows{header: p.header, rows: p.rows, err: p.rowsErr}, nil
}

func (p *fakePool) Ping(context.Context) error {
	return p.pingErr
}

func (p *fakePool) Close() {
	p.closed = true
}

type fakeRows struct {
	header []string
	rows   [][]any
	index  int
	err    error
	closed bool
}

var _ pgx.Rows = (*fakeRows)(nil)

func (r *fakeRows) Close() { r.closed = true }

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.header))
	for i, h := range r.header {
		out[i] = pgconn.FieldDescription{Name: h}
	}
	return out
}

func (r *fakeRows) Next() bool {
	if r.closed || r.index >= len(r.rows) {
		return false
	}
	r.index++
	return true
}

func (r *fakeRows) Scan(...any) error { return errors.New("not implemented") }

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.index-1], nil }

func (r *fakeRows) RawValues() [][]byte { return nil }

func (r *fakeRows) Conn() *pgx.Conn { return nil }
