package testhelpers

import (
	"context"

	tc "github.com/testcontainers/testcontainers-go"
	tcpsql "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/directdb/directdb/adapters"
	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/internal/logger"
)

type PostgresContainer struct {
	*tcpsql.PostgresContainer
	ConnURL string
	Conn    *core.Connection
}

// NewPostgresContainer creates a new postgres container with
// default adapter and connection. The params.URL is overwritten.
// The returned connection is not connected yet.
func NewPostgresContainer(ctx context.Context, params *core.ConnectionParams) (*PostgresContainer, error) {
	ctr, err := tcpsql.Run(
		ctx,
		"postgres:16-alpine",
		tcpsql.BasicWaitStrategies(),
		tc.CustomizeRequest(tc.GenericContainerRequest{
			ProviderType: GetContainerProvider(),
		}),
		tcpsql.WithDatabase("dev"),
	)
	if err != nil {
		return nil, err
	}
	connURL, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	params.URL = connURL
	conn, err := newPostgresConnection(params)
	if err != nil {
		return nil, err
	}

	return &PostgresContainer{
		PostgresContainer: ctr,
		ConnURL:           connURL,
		Conn:              conn,
	}, nil
}

// NewConn helper function to create a new connection with the connection URL.
func (p *PostgresContainer) NewConn(params *core.ConnectionParams) (*core.Connection, error) {
	if params.URL == "" && params.Host == "" {
		params.URL = p.ConnURL
	}
	return newPostgresConnection(params)
}

func newPostgresConnection(params *core.ConnectionParams) (*core.Connection, error) {
	if params.Type == "" {
		params.Type = "postgres"
	}
	return adapters.NewConnection(params,
		adapters.WithLogger(logger.Nop()),
		adapters.WithCreateTableDelay(0),
	)
}
