package adapters

import (
	"context"
	"fmt"
	"net"
	nurl "net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/directdb/directdb/core"
)

// Register client
func init() {
	_ = register(newPostgresFromParams, "postgres", "postgresql", "pg")
}

var (
	_ core.Store          = (*Postgres)(nil)
	_ core.ElementFetcher = (*Postgres)(nil)
)

// pgxPool is the part of *pgxpool.Pool used by Postgres.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// Postgres is a store backed by a postgres connection pool.
// It uses numbered ($1, $2, ...) placeholders.
type Postgres struct {
	host     string
	port     int
	user     string
	password string
	database string
	// dsn is a user provided url or keyword/value string, used as is
	dsn string

	pool    pgxPool
	newPool func(ctx context.Context, connString string) (pgxPool, error)
	config  *storeConfig
}

// NewPostgres creates a postgres store. Parameters are not validated;
// invalid ones fail on Connect.
func NewPostgres(host, user, password, database string, port int, opts ...Option) *Postgres {
	return &Postgres{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		database: database,
		newPool:  newPgxPool,
		config:   newStoreConfig(opts...),
	}
}

func newPgxPool(ctx context.Context, connString string) (pgxPool, error) {
	return pgxpool.New(ctx, connString)
}

// newPostgresFromParams uses discrete fields of params and falls back to the
// URL (or keyword/value DSN) when host is empty. The URL is passed to the pool
// unchanged, so settings like sslmode survive.
func newPostgresFromParams(params *core.ConnectionParams, opts ...Option) (core.Store, error) {
	if params.Host == "" && params.URL != "" {
		cfg, err := pgconn.ParseConfig(params.URL)
		if err != nil {
			return nil, fmt.Errorf("could not parse db connection string: %w", err)
		}
		p := NewPostgres(cfg.Host, cfg.User, cfg.Password, cfg.Database, int(cfg.Port), opts...)
		p.dsn = params.URL
		return p, nil
	}

	port, err := params.PortNumber()
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", params.Port, err)
	}

	return NewPostgres(params.Host, params.User, params.Password, params.Database, port, opts...), nil
}

// connString returns the user provided dsn or builds a postgres:// url from
// the store parameters.
func (p *Postgres) connString() string {
	if p.dsn != "" {
		return p.dsn
	}

	u := &nurl.URL{
		Scheme: "postgres",
		User:   nurl.UserPassword(p.user, p.password),
		Host:   net.JoinHostPort(p.host, strconv.Itoa(p.port)),
		Path:   "/" + p.database,
	}
	return u.String()
}

// Connect creates the pool and checks that the database is reachable.
// Errors are not wrapped in core.Error.
func (p *Postgres) Connect(ctx context.Context) error {
	pool, err := p.newPool(ctx, p.connString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}

	// the pool connects lazily, so ping to surface invalid credentials now
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}

	p.pool = pool
	p.config.logger.Infof("connected to postgres database %q on %s:%d", p.database, p.host, p.port)

	return nil
}

// Close closes the pool. It is a no-op if the store is not connected.
func (p *Postgres) Close() {
	if p.pool == nil {
		return
	}
	p.pool.Close()
	p.pool = nil
	p.config.logger.Infof("closed postgres database %q", p.database)
}
