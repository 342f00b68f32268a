package core

import (
	"errors"
	"time"
)

var (
	ErrNotConnected = errors.New("not connected to database")
	ErrNoColumns    = errors.New("no columns provided")
	ErrNoFilter     = errors.New("no filter provided")
	ErrEmptyQuery   = errors.New("empty raw query")
)

// Kind is the operation an Error originates from.
type Kind int

const (
	KindTable Kind = iota
	KindInsert
	KindFetch
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindInsert:
		return "insert"
	case KindFetch:
		return "fetch"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Sentinels for matching errors by kind with errors.Is.
var (
	ErrTable  = &Error{Kind: KindTable}
	ErrInsert = &Error{Kind: KindInsert}
	ErrFetch  = &Error{Kind: KindFetch}
	ErrUpdate = &Error{Kind: KindUpdate}
	ErrDelete = &Error{Kind: KindDelete}
)

// Error wraps a failed database operation. Its message is the message of the
// underlying error.
type Error struct {
	Kind Kind
	Err  error
	Time time.Time
}

// NewError wraps err with kind and writes a diagnostic line to logger.
// logger can be nil.
func NewError(logger Logger, kind Kind, err error) *Error {
	e := &Error{
		Kind: kind,
		Err:  err,
		Time: time.Now(),
	}

	if logger != nil {
		logger.Errorf("%s error | %s", kind, e.Error())
	}

	return e
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels (errors with no underlying error) of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}
