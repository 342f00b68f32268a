// Package testhelpers provides helpers for integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/directdb/directdb/adapters"
	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/internal/logger"
)

// UsersTable is the table every integration suite works on.
const UsersTable = "users"

// GetContainerProvider returns the container provider type to use for the tests.
// If we detect podman is available, we use it, otherwise we use docker.
func GetContainerProvider() testcontainers.ProviderType {
	if _, err := exec.LookPath("podman"); err == nil {
		fmt.Println("Podman detected. Remember to set TESTCONTAINERS_RYUK_CONTAINER_PRIVILEGED=true;")
		return testcontainers.ProviderPodman
	}
	return testcontainers.ProviderDocker
}

// Users returns the definition of UsersTable. idType is the backend specific
// type of the auto incremented primary key.
func Users(idType string) core.Table {
	return core.NewTable(UsersTable,
		core.Column{Name: "id", Type: idType},
		core.Column{Name: "name", Type: "TEXT"},
		core.Column{Name: "city", Type: "TEXT"},
		core.Column{Name: "age", Type: "INTEGER"},
	)
}

// SeedUsers inserts a fixed set of users.
func SeedUsers(ctx context.Context, store core.Store) error {
	seed := []core.Fields{
		{core.F("name", "John Smith"), core.F("city", "Oslo"), core.F("age", 40)},
		{core.F("name", "Jane Smith"), core.F("city", "Bergen"), core.F("age", 35)},
		{core.F("name", "Ann Lee"), core.F("city", "Oslo"), core.F("age", 31)},
	}

	for _, data := range seed {
		if _, err := store.Insert(ctx, UsersTable, data); err != nil {
			return err
		}
	}
	return nil
}

// NewSQLiteConnection creates a connected sqlite connection backed by a
// file in a temporary directory of t.
func NewSQLiteConnection(t *testing.T, params *core.ConnectionParams) *core.Connection {
	t.Helper()

	if params.Type == "" {
		params.Type = "sqlite"
	}
	if params.File == "" {
		params.File = filepath.Join(t.TempDir(), "test.db")
	}

	conn, err := adapters.NewConnection(params, adapters.WithLogger(logger.Nop()))
	require.NoError(t, err)

	require.NoError(t, conn.Connect(context.Background()))
	t.Cleanup(conn.Close)

	return conn
}

// Column returns the values of column from rows.
func Column(t *testing.T, result *core.Result, column string) []any {
	t.Helper()

	idx := -1
	for i, h := range result.Header() {
		if h == column {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx, "column %q not in header %v", column, result.Header())

	out := make([]any, 0, result.Len())
	for _, row := range result.All() {
		out = append(out, row[idx])
	}
	return out
}
