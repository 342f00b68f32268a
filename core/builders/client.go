package builders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/directdb/directdb/core"
)

// default sql client used by other specific implementations
type Client struct {
	db *sql.DB
}

func NewClient(db *sql.DB) *Client {
	return &Client{
		db: db,
	}
}

// Conn reserves a single connection. It has to be closed after use.
func (c *Client) Conn(ctx context.Context) (*Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	return &Conn{
		conn: conn,
	}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Close() {
	_ = c.db.Close()
}

// connection to use for execution
type Conn struct {
	conn *sql.Conn
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

// Exec executes a statement in a transaction and commits it.
// It returns the number of affected rows.
func (c *Conn) Exec(ctx context.Context, st Statement) (int64, error) {
	tx, err := c.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, st.Query, st.Args...)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return 0, errors.Join(err, fmt.Errorf("tx.Rollback: %w", rerr))
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		// some statements (DDL) don't report affected rows
		return 0, nil
	}

	return affected, nil
}

// Query executes a query on a connection and returns a result stream.
func (c *Conn) Query(ctx context.Context, st Statement) (*ResultStream, error) {
	dbRows, err := c.conn.QueryContext(ctx, st.Query, st.Args...)
	if err != nil {
		return nil, err
	}

	header, err := dbRows.Columns()
	if err != nil {
		_ = dbRows.Close()
		return nil, err
	}

	// the error of a failed iteration is only available after Next returns false
	hasNextFunc := func() bool {
		return dbRows.Next()
	}

	nextFunc := func() (core.Row, error) {
		columns := make([]any, len(header))
		columnPointers := make([]any, len(header))
		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := dbRows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		return core.Row(columns), nil
	}

	rows := NewResultStreamBuilder().
		WithNextFunc(nextFunc, hasNextFunc).
		WithHeader(header).
		WithErrFunc(dbRows.Err).
		WithCloseFunc(func() {
			_ = dbRows.Close()
		}).
		Build()

	return rows, nil
}
