package builders

import (
	"errors"
	"sync"

	"github.com/directdb/directdb/core"
)

var _ core.ResultStream = (*ResultStream)(nil)

// ResultStream fills core.ResultStream interface for all sql dbs
type ResultStream struct {
	next    func() (core.Row, error)
	hasNext func() bool
	err     func() error
	close   func()
	header  core.Header
	once    sync.Once
}

func (r *ResultStream) Header() core.Header {
	return r.header
}

func (r *ResultStream) HasNext() bool {
	return r.hasNext()
}

func (r *ResultStream) Next() (core.Row, error) {
	row, err := r.next()
	if err != nil || row == nil {
		r.Close()
		return nil, err
	}
	return row, nil
}

// Err returns the error that ended the iteration early, if any.
func (r *ResultStream) Err() error {
	return r.err()
}

func (r *ResultStream) Close() {
	r.once.Do(r.close)
	r.hasNext = func() bool {
		return false
	}
}

// ResultStreamBuilder builds the rows
type ResultStreamBuilder struct {
	next    func() (core.Row, error)
	hasNext func() bool
	err     func() error
	header  core.Header
	close   func()
}

func NewResultStreamBuilder() *ResultStreamBuilder {
	return &ResultStreamBuilder{
		next:    func() (core.Row, error) { return nil, errors.New("no next row") },
		hasNext: func() bool { return false },
		err:     func() error { return nil },
		header:  core.Header{},
		close:   func() {},
	}
}

func (b *ResultStreamBuilder) WithNextFunc(fn func() (core.Row, error), has func() bool) *ResultStreamBuilder {
	b.next = fn
	b.hasNext = has
	return b
}

func (b *ResultStreamBuilder) WithHeader(header core.Header) *ResultStreamBuilder {
	b.header = header
	return b
}

func (b *ResultStreamBuilder) WithErrFunc(fn func() error) *ResultStreamBuilder {
	b.err = fn
	return b
}

func (b *ResultStreamBuilder) WithCloseFunc(fn func()) *ResultStreamBuilder {
	b.close = fn
	return b
}

func (b *ResultStreamBuilder) Build() *ResultStream {
	return &ResultStream{
		next:    b.next,
		hasNext: b.hasNext,
		err:     b.err,
		header:  b.header,
		close:   b.close,
	}
}
