package adapters

import (
	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/core/builders"
)

// Statement constructors shared by all stores. They reject input that
// would produce malformed (or unbounded) statements before anything
// reaches the driver.

func insertStatement(ph builders.Placeholder, table string, data core.Fields) (builders.Statement, error) {
	if len(data) < 1 {
		return builders.Statement{}, core.ErrNoColumns
	}
	return builders.Insert(ph, table, data), nil
}

func updateStatement(ph builders.Placeholder, table string, filter, data core.Fields) (builders.Statement, error) {
	if len(data) < 1 {
		return builders.Statement{}, core.ErrNoColumns
	}
	if len(filter) < 1 {
		return builders.Statement{}, core.ErrNoFilter
	}
	return builders.Update(ph, table, data, filter), nil
}

func deleteStatement(ph builders.Placeholder, table string, filter core.Fields) (builders.Statement, error) {
	if len(filter) < 1 {
		return builders.Statement{}, core.ErrNoFilter
	}
	return builders.Delete(ph, table, filter), nil
}

// fetchStatement picks one of the fetch modes in order:
// raw query, select all, select with filter.
func fetchStatement(ph builders.Placeholder, table string, opts *core.FetchOptions) (builders.Statement, error) {
	if opts.IsRaw {
		if opts.RawQuery == "" {
			return builders.Statement{}, core.ErrEmptyQuery
		}
		return builders.Statement{Query: opts.RawQuery}, nil
	}

	return builders.Select(ph, table, opts.Filter, opts.Sort), nil
}
