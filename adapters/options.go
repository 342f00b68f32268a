package adapters

import (
	"time"

	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/internal/logger"
)

// defaultCreateTableDelay throttles consecutive CREATE TABLE statements on postgres.
const defaultCreateTableDelay = 200 * time.Millisecond

type storeConfig struct {
	logger           core.Logger
	createTableDelay time.Duration
}

func newStoreConfig(opts ...Option) *storeConfig {
	config := &storeConfig{
		logger:           logger.Default(),
		createTableDelay: defaultCreateTableDelay,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*storeConfig)

// WithLogger sets the logger used for diagnostics. Nil values are ignored.
func WithLogger(l core.Logger) Option {
	return func(c *storeConfig) {
		if l == nil {
			return
		}
		c.logger = l
	}
}

// WithCreateTableDelay sets the pause before each CREATE TABLE on postgres.
func WithCreateTableDelay(d time.Duration) Option {
	return func(c *storeConfig) {
		if d < 0 {
			d = 0
		}
		c.createTableDelay = d
	}
}
