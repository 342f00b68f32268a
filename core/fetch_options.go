package core

// FetchOptions are collected from FetchOption functions.
type FetchOptions struct {
	Filter Fields
	Sort   Sort

	// RawQuery is executed verbatim when IsRaw is set.
	RawQuery string
	IsRaw    bool
}

type FetchOption func(*FetchOptions)

// NewFetchOptions applies opts on top of empty options.
func NewFetchOptions(opts ...FetchOption) *FetchOptions {
	o := &FetchOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFilter adds equality filters joined with AND.
func WithFilter(fields ...Field) FetchOption {
	return func(o *FetchOptions) {
		o.Filter = append(o.Filter, fields...)
	}
}

// WithSort orders the rows. The clause is added only if both by and direction
// are not empty.
func WithSort(by, direction string) FetchOption {
	return func(o *FetchOptions) {
		o.Sort = Sort{By: by, Direction: direction}
	}
}

// WithRawQuery executes the provided query without any parameter binding.
// Table, filter and sort are ignored.
func WithRawQuery(query string) FetchOption {
	return func(o *FetchOptions) {
		o.RawQuery = query
		o.IsRaw = true
	}
}
