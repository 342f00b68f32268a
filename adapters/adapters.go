package adapters

import (
	"errors"
	"fmt"

	"github.com/directdb/directdb/core"
)

var (
	errNoValidTypeAliases   = errors.New("no valid type aliases provided")
	ErrUnsupportedTypeAlias = errors.New("no store registered for provided type alias")
)

// StoreFunc creates a store from expanded connection parameters.
type StoreFunc func(params *core.ConnectionParams, opts ...Option) (core.Store, error)

var _ core.Adapter = (*optionsAdapter)(nil)

// optionsAdapter binds store options to a registered StoreFunc.
type optionsAdapter struct {
	newStore StoreFunc
	opts     []Option
}

func (a *optionsAdapter) NewStore(params *core.ConnectionParams) (core.Store, error) {
	return a.newStore(params, a.opts...)
}

// registeredStores holds implemented stores - specific stores register themselves in their init functions.
// The main reason is to be able to compile the binary without unsupported os/arch of specific drivers.
var registeredStores = make(map[string]StoreFunc)

// register registers a new store for specific database
func register(fn StoreFunc, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidTypeAliases
	}

	invalidCount := 0
	for _, alias := range aliases {
		if alias == "" {
			invalidCount++
			continue
		}
		registeredStores[alias] = fn
	}

	if invalidCount == len(aliases) {
		return errNoValidTypeAliases
	}

	return nil
}

// Mux is an interface to all internal stores.
type Mux struct{}

// GetAdapter returns an adapter for the type alias that applies opts to every
// created store.
func (*Mux) GetAdapter(typ string, opts ...Option) (core.Adapter, error) {
	fn, ok := registeredStores[typ]
	if !ok {
		return nil, ErrUnsupportedTypeAlias
	}

	return &optionsAdapter{newStore: fn, opts: opts}, nil
}

func (*Mux) AddStore(typ string, fn StoreFunc) error {
	return register(fn, typ)
}

var _ core.Adapter = (*typeAdapter)(nil)

// typeAdapter picks the registered store by the type of already expanded
// params, so templates in params are executed only once.
type typeAdapter struct {
	opts []Option
}

func (a *typeAdapter) NewStore(params *core.ConnectionParams) (core.Store, error) {
	adapter, err := new(Mux).GetAdapter(params.Type, a.opts...)
	if err != nil {
		return nil, fmt.Errorf("Mux.GetAdapter: %w", err)
	}
	return adapter.NewStore(params)
}

// NewConnection is a wrapper around core.NewConnection that uses the internal mux for
// store registration. The returned connection is not connected yet.
func NewConnection(params *core.ConnectionParams, opts ...Option) (*core.Connection, error) {
	c, err := core.NewConnection(params, &typeAdapter{opts: opts})
	if err != nil {
		return nil, fmt.Errorf("core.NewConnection: %w", err)
	}

	return c, nil
}
