package mock

import (
	"github.com/directdb/directdb/core"
)

type resultStreamConfig struct {
	failAt  int
	failErr error
	header  core.Header
}

type ResultStreamOption func(*resultStreamConfig)

// ResultStreamWithNextError makes Next fail with err when reaching row at index.
func ResultStreamWithNextError(index int, err error) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.failAt = index
		c.failErr = err
	}
}

func ResultStreamWithHeader(header core.Header) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.header = header
	}
}
