package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/directdb/directdb/core"
)

var (
	_ core.Store          = (*Store)(nil)
	_ core.ElementFetcher = (*Store)(nil)
)

// Store is an in-memory core.Store that returns the same rows on every fetch
// and records the operations it was asked to do.
type Store struct {
	data   []core.Row
	config *storeConfig

	mu    sync.Mutex
	calls []string
}

func NewStore(data []core.Row, opts ...StoreOption) *Store {
	config := &storeConfig{
		sideEffects:         make(map[string]func(context.Context) error),
		resultStreamOptions: []ResultStreamOption{},
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Store{
		data:   data,
		config: config,
	}
}

// Calls returns recorded operations in form of "<operation> <table>".
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Store) record(ctx context.Context, op, table string) error {
	s.mu.Lock()
	s.calls = append(s.calls, fmt.Sprintf("%s %s", op, table))
	s.mu.Unlock()

	eff, ok := s.config.sideEffects[op]
	if ok {
		if err := eff(ctx); err != nil {
			return fmt.Errorf("side effect error: %w", err)
		}
	}
	return nil
}

func (s *Store) result() (*core.Result, error) {
	return core.ResultFromStream(NewResultStream(s.data, s.config.resultStreamOptions...))
}

func (s *Store) Connect(ctx context.Context) error {
	return s.record(ctx, "connect", "")
}

func (s *Store) CreateTable(ctx context.Context, tables ...core.Table) error {
	for _, t := range tables {
		if err := s.record(ctx, "create", t.Name); err != nil {
			return core.NewError(nil, core.KindTable, err)
		}
	}
	return nil
}

func (s *Store) DropTable(ctx context.Context, table string) error {
	if err := s.record(ctx, "drop", table); err != nil {
		return core.NewError(nil, core.KindTable, err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, table string, _ core.Fields) (int64, error) {
	if err := s.record(ctx, "insert", table); err != nil {
		return 0, core.NewError(nil, core.KindInsert, err)
	}
	return 1, nil
}

func (s *Store) Fetch(ctx context.Context, table string, _ ...core.FetchOption) (*core.Result, error) {
	if err := s.record(ctx, "fetch", table); err != nil {
		return nil, core.NewError(nil, core.KindFetch, err)
	}
	return s.result()
}

func (s *Store) FetchElement(ctx context.Context, table, _, _ string) (*core.Result, error) {
	if err := s.record(ctx, "fetch_element", table); err != nil {
		return nil, core.NewError(nil, core.KindFetch, err)
	}
	return s.result()
}

func (s *Store) Update(ctx context.Context, table string, _, _ core.Fields) (int64, error) {
	if err := s.record(ctx, "update", table); err != nil {
		return 0, core.NewError(nil, core.KindUpdate, err)
	}
	return int64(len(s.data)), nil
}

func (s *Store) Delete(ctx context.Context, table string, _ core.Fields) (int64, error) {
	if err := s.record(ctx, "delete", table); err != nil {
		return 0, core.NewError(nil, core.KindDelete, err)
	}
	return int64(len(s.data)), nil
}

func (s *Store) Close() {}

var _ core.Adapter = (*Adapter)(nil)

// Adapter always returns the same store.
type Adapter struct {
	store core.Store
}

func NewAdapter(store core.Store) *Adapter {
	return &Adapter{store: store}
}

func (a *Adapter) NewStore(_ *core.ConnectionParams) (core.Store, error) {
	return a.store, nil
}
