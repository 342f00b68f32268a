package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrElementFetchNotSupported = errors.New("element fetching not supported")

type ConnectionID string

// Connection binds a Store to the parameters it was created from.
// Store methods are promoted, so a Connection can be used as a Store.
type Connection struct {
	Store

	params           *ConnectionParams
	unexpandedParams *ConnectionParams
}

func (c *Connection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.params)
}

// NewConnection expands params and creates a store with adapter.
// The store is not connected yet.
func NewConnection(params *ConnectionParams, adapter Adapter) (*Connection, error) {
	expanded := params.Expand()

	if expanded.ID == "" {
		expanded.ID = ConnectionID(uuid.New().String())
	}

	store, err := adapter.NewStore(expanded)
	if err != nil {
		return nil, fmt.Errorf("adapter.NewStore: %w", err)
	}

	return &Connection{
		Store:            store,
		params:           expanded,
		unexpandedParams: params,
	}, nil
}

func (c *Connection) GetID() ConnectionID {
	return c.params.ID
}

func (c *Connection) GetName() string {
	return c.params.Name
}

func (c *Connection) GetType() string {
	return c.params.Type
}

// GetParams returns the original source for this connection
func (c *Connection) GetParams() *ConnectionParams {
	return c.unexpandedParams
}

// FetchElement returns all rows of table where column contains element.
func (c *Connection) FetchElement(ctx context.Context, table, element, column string) (*Result, error) {
	fetcher, ok := c.Store.(ElementFetcher)
	if !ok {
		return nil, ErrElementFetchNotSupported
	}

	return fetcher.FetchElement(ctx, table, element, column)
}

// DropTables drops all provided tables concurrently. A failed drop doesn't
// stop the others; the first failure is returned.
func (c *Connection) DropTables(ctx context.Context, tables ...string) error {
	var g errgroup.Group

	for _, table := range tables {
		g.Go(func() error {
			return c.Store.DropTable(ctx, table)
		})
	}

	return g.Wait()
}
