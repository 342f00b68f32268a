package adapters

import (
	"context"
	"time"

	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/core/builders"
)

func (p *Postgres) exec(ctx context.Context, st builders.Statement) (int64, error) {
	if p.pool == nil {
		return 0, core.ErrNotConnected
	}

	p.config.logger.Debugf("postgres exec: %s", st.Query)

	tag, err := p.pool.Exec(ctx, st.Query, st.Args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (p *Postgres) query(ctx context.Context, st builders.Statement) (*core.Result, error) {
	if p.pool == nil {
		return nil, core.ErrNotConnected
	}

	p.config.logger.Debugf("postgres query: %s", st.Query)

	rows, err := p.pool.Query(ctx, st.Query, st.Args...)
	if err != nil {
		return nil, err
	}

	var header core.Header
	for _, fd := range rows.FieldDescriptions() {
		header = append(header, fd.Name)
	}

	nextFunc := func() (core.Row, error) {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		return core.Row(values), nil
	}

	stream := builders.NewResultStreamBuilder().
		WithNextFunc(nextFunc, rows.Next).
		WithHeader(header).
		WithErrFunc(rows.Err).
		WithCloseFunc(rows.Close).
		Build()

	return core.ResultFromStream(stream)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CreateTable creates tables one by one, pausing before each statement.
func (p *Postgres) CreateTable(ctx context.Context, tables ...core.Table) error {
	for _, table := range tables {
		st := builders.CreateTable(table)

		if err := wait(ctx, p.config.createTableDelay); err != nil {
			return core.NewError(p.config.logger, core.KindTable, err)
		}

		if _, err := p.exec(ctx, st); err != nil {
			return core.NewError(p.config.logger, core.KindTable, err)
		}
	}

	return nil
}

func (p *Postgres) DropTable(ctx context.Context, table string) error {
	if _, err := p.exec(ctx, builders.DropTable(table)); err != nil {
		return core.NewError(p.config.logger, core.KindTable, err)
	}
	return nil
}

func (p *Postgres) Insert(ctx context.Context, table string, data core.Fields) (int64, error) {
	st, err := insertStatement(builders.Dollar, table, data)
	if err != nil {
		return 0, core.NewError(p.config.logger, core.KindInsert, err)
	}

	affected, err := p.exec(ctx, st)
	if err != nil {
		return 0, core.NewError(p.config.logger, core.KindInsert, err)
	}

	return affected, nil
}

// Fetch returns rows of table. See core.FetchOption for the available modes.
func (p *Postgres) Fetch(ctx context.Context, table string, opts ...core.FetchOption) (*core.Result, error) {
	st, err := fetchStatement(builders.Dollar, table, core.NewFetchOptions(opts...))
	if err != nil {
		return nil, core.NewError(p.config.logger, core.KindFetch, err)
	}

	result, err := p.query(ctx, st)
	if err != nil {
		return nil, core.NewError(p.config.logger, core.KindFetch, err)
	}

	return result, nil
}

func (p *Postgres) FetchElement(ctx context.Context, table, element, column string) (*core.Result, error) {
	result, err := p.query(ctx, builders.SelectLike(builders.Dollar, table, column, element))
	if err != nil {
		return nil, core.NewError(p.config.logger, core.KindFetch, err)
	}

	return result, nil
}

// Update sets data on rows matching filter. Placeholders of filter continue
// after the ones of data.
func (p *Postgres) Update(ctx context.Context, table string, filter, data core.Fields) (int64, error) {
	st, err := updateStatement(builders.Dollar, table, filter, data)
	if err != nil {
		return 0, core.NewError(p.config.logger, core.KindUpdate, err)
	}

	affected, err := p.exec(ctx, st)
	if err != nil {
		return 0, core.NewError(p.config.logger, core.KindUpdate, err)
	}

	return affected, nil
}

func (p *Postgres) Delete(ctx context.Context, table string, filter core.Fields) (int64, error) {
	st, err := deleteStatement(builders.Dollar, table, filter)
	if err != nil {
		return 0, core.NewError(p.config.logger, core.KindDelete, err)
	}

	affected, err := p.exec(ctx, st)
	if err != nil {
		return 0, core.NewError(p.config.logger, core.KindDelete, err)
	}

	return affected, nil
}
