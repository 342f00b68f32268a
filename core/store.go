package core

import "context"

type (
	// Store is a database backend that executes CRUD operations built from
	// structured input. Backends differ only in placeholder syntax and in how
	// statements are committed.
	Store interface {
		// Connect opens the underlying connection (or pool). Errors are
		// returned as they come from the driver.
		Connect(ctx context.Context) error
		// CreateTable creates every table in order if it doesn't exist.
		CreateTable(ctx context.Context, tables ...Table) error
		DropTable(ctx context.Context, table string) error
		// Insert, Update and Delete return the number of affected rows.
		Insert(ctx context.Context, table string, data Fields) (int64, error)
		Fetch(ctx context.Context, table string, opts ...FetchOption) (*Result, error)
		Update(ctx context.Context, table string, filter, data Fields) (int64, error)
		Delete(ctx context.Context, table string, filter Fields) (int64, error)
		Close()
	}

	// ElementFetcher is an optional interface for stores that can search
	// a column for a substring.
	ElementFetcher interface {
		FetchElement(ctx context.Context, table, element, column string) (*Result, error)
	}

	// Adapter creates stores from connection parameters.
	Adapter interface {
		NewStore(params *ConnectionParams) (Store, error)
	}
)
