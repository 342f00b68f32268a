//go:build (darwin && (amd64 || arm64)) || (freebsd && (386 || amd64 || arm || arm64)) || (linux && (386 || amd64 || arm || arm64 || ppc64le || riscv64 || s390x)) || (netbsd && amd64) || (openbsd && (amd64 || arm64)) || (windows && (amd64 || arm64))

package adapters

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/core/builders"
)

// Register client
func init() {
	_ = register(newSQLiteFromParams, "sqlite", "sqlite3")
}

var (
	_ core.Store          = (*SQLite)(nil)
	_ core.ElementFetcher = (*SQLite)(nil)
)

// SQLite is a store backed by a single connection to a database file.
// It uses positional (?) placeholders and commits every mutation.
type SQLite struct {
	file   string
	c      *builders.Client
	config *storeConfig
}

func NewSQLite(file string, opts ...Option) *SQLite {
	return &SQLite{
		file:   file,
		config: newStoreConfig(opts...),
	}
}

func newSQLiteFromParams(params *core.ConnectionParams, opts ...Option) (core.Store, error) {
	file := params.File
	if file == "" {
		file = params.URL
	}
	return NewSQLite(file, opts...), nil
}

// Connect opens the database file. Errors are not wrapped in core.Error.
func (s *SQLite) Connect(ctx context.Context) error {
	db, err := sql.Open("sqlite", s.file)
	if err != nil {
		return fmt.Errorf("unable to connect to sqlite database: %w", err)
	}

	// a single connection, concurrent callers are serialized by the pool
	db.SetMaxOpenConns(1)

	c := builders.NewClient(db)
	if err := c.Ping(ctx); err != nil {
		c.Close()
		return fmt.Errorf("unable to connect to sqlite database: %w", err)
	}

	s.c = c
	s.config.logger.Infof("connected to sqlite database %q", s.file)

	return nil
}

// Close releases the connection. Closing a closed (or never opened)
// store does nothing.
func (s *SQLite) Close() {
	if s.c == nil {
		return
	}
	s.c.Close()
	s.c = nil
	s.config.logger.Infof("closed sqlite database %q", s.file)
}
