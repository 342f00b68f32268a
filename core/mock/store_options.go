package mock

import "context"

type storeConfig struct {
	sideEffects         map[string]func(context.Context) error
	resultStreamOptions []ResultStreamOption
}

type StoreOption func(*storeConfig)

// StoreWithSideEffect runs sideEffect whenever the operation is called.
// Operation names are: connect, create, drop, insert, fetch, fetch_element, update, delete.
func StoreWithSideEffect(operation string, sideEffect func(context.Context) error) StoreOption {
	return func(c *storeConfig) {
		_, ok := c.sideEffects[operation]
		if ok {
			panic("side effect already registered for operation: " + operation)
		}

		c.sideEffects[operation] = sideEffect
	}
}

func StoreWithResultStreamOpts(opts ...ResultStreamOption) StoreOption {
	return func(c *storeConfig) {
		c.resultStreamOptions = append(c.resultStreamOptions, opts...)
	}
}
