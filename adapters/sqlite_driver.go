//go:build (darwin && (amd64 || arm64)) || (freebsd && (386 || amd64 || arm || arm64)) || (linux && (386 || amd64 || arm || arm64 || ppc64le || riscv64 || s390x)) || (netbsd && amd64) || (openbsd && (amd64 || arm64)) || (windows && (amd64 || arm64))

package adapters

import (
	"context"

	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/core/builders"
)

// exec runs st on a scoped connection and commits it.
func (s *SQLite) exec(ctx context.Context, st builders.Statement) (int64, error) {
	if s.c == nil {
		return 0, core.ErrNotConnected
	}

	s.config.logger.Debugf("sqlite exec: %s", st.Query)

	conn, err := s.c.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	return conn.Exec(ctx, st)
}

func (s *SQLite) query(ctx context.Context, st builders.Statement) (*core.Result, error) {
	if s.c == nil {
		return nil, core.ErrNotConnected
	}

	s.config.logger.Debugf("sqlite query: %s", st.Query)

	conn, err := s.c.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	stream, err := conn.Query(ctx, st)
	if err != nil {
		return nil, err
	}

	return core.ResultFromStream(stream)
}

// CreateTable creates tables in order. The first failure stops the rest.
func (s *SQLite) CreateTable(ctx context.Context, tables ...core.Table) error {
	for _, table := range tables {
		if _, err := s.exec(ctx, builders.CreateTable(table)); err != nil {
			return core.NewError(s.config.logger, core.KindTable, err)
		}
	}
	return nil
}

func (s *SQLite) DropTable(ctx context.Context, table string) error {
	if _, err := s.exec(ctx, builders.DropTable(table)); err != nil {
		return core.NewError(s.config.logger, core.KindTable, err)
	}
	return nil
}

func (s *SQLite) Insert(ctx context.Context, table string, data core.Fields) (int64, error) {
	st, err := insertStatement(builders.Question, table, data)
	if err != nil {
		return 0, core.NewError(s.config.logger, core.KindInsert, err)
	}

	affected, err := s.exec(ctx, st)
	if err != nil {
		return 0, core.NewError(s.config.logger, core.KindInsert, err)
	}

	return affected, nil
}

func (s *SQLite) Fetch(ctx context.Context, table string, opts ...core.FetchOption) (*core.Result, error) {
	st, err := fetchStatement(builders.Question, table, core.NewFetchOptions(opts...))
	if err != nil {
		return nil, core.NewError(s.config.logger, core.KindFetch, err)
	}

	result, err := s.query(ctx, st)
	if err != nil {
		return nil, core.NewError(s.config.logger, core.KindFetch, err)
	}

	return result, nil
}

// FetchElement returns rows where column contains element. Case sensitivity
// follows sqlite's LIKE (case insensitive for ASCII).
func (s *SQLite) FetchElement(ctx context.Context, table, element, column string) (*core.Result, error) {
	result, err := s.query(ctx, builders.SelectLike(builders.Question, table, column, element))
	if err != nil {
		return nil, core.NewError(s.config.logger, core.KindFetch, err)
	}

	return result, nil
}

func (s *SQLite) Update(ctx context.Context, table string, filter, data core.Fields) (int64, error) {
	st, err := updateStatement(builders.Question, table, filter, data)
	if err != nil {
		return 0, core.NewError(s.config.logger, core.KindUpdate, err)
	}

	affected, err := s.exec(ctx, st)
	if err != nil {
		return 0, core.NewError(s.config.logger, core.KindUpdate, err)
	}

	return affected, nil
}

func (s *SQLite) Delete(ctx context.Context, table string, filter core.Fields) (int64, error) {
	st, err := deleteStatement(builders.Question, table, filter)
	if err != nil {
		return 0, core.NewError(s.config.logger, core.KindDelete, err)
	}

	affected, err := s.exec(ctx, st)
	if err != nil {
		return 0, core.NewError(s.config.logger, core.KindDelete, err)
	}

	return affected, nil
}
