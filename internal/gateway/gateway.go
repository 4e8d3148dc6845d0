// Package gateway defines the single handle every screen uses to reach the
// backend: a small query/insert/update/delete surface over named tables.
package gateway

import (
	"context"
	"fmt"
	"regexp"
)

// Row is one table row keyed by column name.
type Row map[string]any

// Op is a filter operator.
type Op string

const (
	OpEq  Op = "eq"
	OpIn  Op = "in"
	OpGte Op = "gte"
	OpLt  Op = "lt"
)

// Filter restricts a select or count.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Eq is shorthand for an equality filter.
func Eq(column string, value any) Filter { return Filter{Column: column, Op: OpEq, Value: value} }

// In matches any of values.
func In(column string, values ...any) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

// Order sorts a select on the backend.
type Order struct {
	Column string
	Desc   bool
}

// Query describes a select. Zero Limit means no limit.
type Query struct {
	Columns []string
	Filters []Filter
	Order   *Order
	Offset  int
	Limit   int
}

// Gateway is implemented by every backend.
// Update and Delete address rows by their "id" column and return ErrNoRows
// when nothing matched.
type Gateway interface {
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	Count(ctx context.Context, table string, filters ...Filter) (int, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table string, id any, patch Row) (Row, error)
	Delete(ctx context.Context, table string, id any) error
	Close() error
}

// IDColumn is the key column Update and Delete match on.
const IDColumn = "id"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdent reports whether s is safe to use as a table or column name.
func ValidIdent(s string) bool { return identRe.MatchString(s) }

func checkIdents(table string, q Query) error {
	if !ValidIdent(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	for _, c := range q.Columns {
		if c != "*" && !ValidIdent(c) {
			return fmt.Errorf("invalid column name %q", c)
		}
	}
	for _, f := range q.Filters {
		if !ValidIdent(f.Column) {
			return fmt.Errorf("invalid filter column %q", f.Column)
		}
	}
	if q.Order != nil && !ValidIdent(q.Order.Column) {
		return fmt.Errorf("invalid order column %q", q.Order.Column)
	}
	return nil
}
