package core

type (
	// FormatterOptions provide various options for formatters
	FormatterOptions struct {
		// ChunkStart is the index of the first formatted row in the whole result.
		ChunkStart int
	}

	// Formatter converts header and rows to bytes
	Formatter interface {
		Format(header Header, rows []Row, opts *FormatterOptions) ([]byte, error)
	}
)

type (
	// Row and Header are attributes of ResultStream iterator
	Row    []any
	Header []string

	// ResultStream is a result from executed query and has a form of an iterator
	ResultStream interface {
		Header() Header
		Next() (Row, error)
		HasNext() bool
		Close()
	}
)

// Column is a single column definition of a table.
// Type is passed to the database as is, so it can carry constraints
// (e.g. "serial primary key").
type Column struct {
	Name string
	Type string
}

// Table describes a table to be created.
type Table struct {
	Name    string
	Columns []Column
}

// NewTable is a shorthand for building a table from name/type pairs.
func NewTable(name string, columns ...Column) Table {
	return Table{
		Name:    name,
		Columns: columns,
	}
}

// Field is a single column-value pair. It's used for inserted and updated
// data as well as for equality filters.
type Field struct {
	Column string
	Value  any
}

// F creates a new field.
func F(column string, value any) Field {
	return Field{Column: column, Value: value}
}

// Fields is an ordered set of column-value pairs. The order is significant:
// it determines placeholder numbering and the order of bound arguments.
type Fields []Field

// Columns returns column names in order.
func (f Fields) Columns() []string {
	out := make([]string, len(f))
	for i, field := range f {
		out[i] = field.Column
	}
	return out
}

// Values returns values in order.
func (f Fields) Values() []any {
	out := make([]any, len(f))
	for i, field := range f {
		out[i] = field.Value
	}
	return out
}

// Sort is an optional ordering of fetched rows.
// Direction is not checked and is expected to be "ASC" or "DESC".
type Sort struct {
	By        string
	Direction string
}

// IsSet reports whether both the column and the direction are present.
func (s Sort) IsSet() bool {
	return s.By != "" && s.Direction != ""
}
