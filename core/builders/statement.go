package builders

import (
	"fmt"
	"strings"

	"github.com/directdb/directdb/core"
)

// Placeholder returns the bind parameter marker for the n-th (1-based) argument.
type Placeholder func(n int) string

// Dollar is the numbered placeholder style of postgres ($1, $2, ...).
func Dollar(n int) string {
	return fmt.Sprintf("$%d", n)
}

// Question is the positional placeholder style of sqlite (?, ?, ...).
func Question(int) string {
	return "?"
}

// Statement is a query with the arguments bound to its placeholders.
type Statement struct {
	Query string
	Args  []any
}

// binder collects arguments and hands out placeholders in binding order.
type binder struct {
	ph   Placeholder
	args []any
}

func newBinder(ph Placeholder) *binder {
	return &binder{ph: ph}
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return b.ph(len(b.args))
}

// assignments returns "column = <placeholder>" for every field.
func (b *binder) assignments(fields core.Fields) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fmt.Sprintf("%s = %s", f.Column, b.bind(f.Value))
	}
	return out
}

func (b *binder) where(filter core.Fields) string {
	return " WHERE " + strings.Join(b.assignments(filter), " AND ")
}

func orderBy(sort core.Sort) string {
	if !sort.IsSet() {
		return ""
	}
	return fmt.Sprintf(" ORDER BY %s %s", sort.By, sort.Direction)
}

// CreateTable builds: CREATE TABLE IF NOT EXISTS name (col1 type1, col2 type2)
func CreateTable(table core.Table) Statement {
	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = fmt.Sprintf("%s %s", c.Name, c.Type)
	}

	return Statement{
		Query: fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table.Name, strings.Join(columns, ", ")),
	}
}

// DropTable builds: DROP TABLE IF EXISTS name
func DropTable(table string) Statement {
	return Statement{
		Query: fmt.Sprintf("DROP TABLE IF EXISTS %s", table),
	}
}

// Insert builds: INSERT INTO table (c1, c2) VALUES (p1, p2)
func Insert(ph Placeholder, table string, data core.Fields) Statement {
	b := newBinder(ph)

	placeholders := make([]string, len(data))
	for i, f := range data {
		placeholders[i] = b.bind(f.Value)
	}

	return Statement{
		Query: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table,
			strings.Join(data.Columns(), ", "),
			strings.Join(placeholders, ", "),
		),
		Args: b.args,
	}
}

// Select builds: SELECT * FROM table [WHERE f1 = p1 AND ...] [ORDER BY by dir]
// An empty filter is the same as no filter.
func Select(ph Placeholder, table string, filter core.Fields, sort core.Sort) Statement {
	b := newBinder(ph)

	query := fmt.Sprintf("SELECT * FROM %s", table)
	if len(filter) > 0 {
		query += b.where(filter)
	}
	query += orderBy(sort)

	return Statement{
		Query: query,
		Args:  b.args,
	}
}

// SelectLike builds: SELECT * FROM table WHERE column LIKE p1
// with the argument %element%.
func SelectLike(ph Placeholder, table, column, element string) Statement {
	b := newBinder(ph)

	return Statement{
		Query: fmt.Sprintf("SELECT * FROM %s WHERE %s LIKE %s", table, column, b.bind("%"+element+"%")),
		Args:  b.args,
	}
}

// Update builds: UPDATE table SET c1 = p1, c2 = p2 WHERE f1 = p3 AND ...
// Filter placeholders continue the numbering of data placeholders.
func Update(ph Placeholder, table string, data, filter core.Fields) Statement {
	b := newBinder(ph)

	set := strings.Join(b.assignments(data), ", ")
	where := b.where(filter)

	return Statement{
		Query: fmt.Sprintf("UPDATE %s SET %s%s", table, set, where),
		Args:  b.args,
	}
}

// Delete builds: DELETE FROM table WHERE f1 = p1 AND ...
func Delete(ph Placeholder, table string, filter core.Fields) Statement {
	b := newBinder(ph)

	return Statement{
		Query: fmt.Sprintf("DELETE FROM %s%s", table, b.where(filter)),
		Args:  b.args,
	}
}
