package gateway

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dialect captures the differences between the SQL backends.
type Dialect struct {
	Name        string
	Placeholder func(n int) string
}

var (
	// SQLite uses positional question marks.
	SQLite = Dialect{Name: "sqlite3", Placeholder: func(int) string { return "?" }}
	// Postgres uses numbered parameters.
	Postgres = Dialect{Name: "postgres", Placeholder: func(n int) string { return "$" + strconv.Itoa(n) }}
)

// Statement is a built SQL string with its arguments.
type Statement struct {
	SQL  string
	Args []any
}

type builder struct {
	d    Dialect
	sb   strings.Builder
	args []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return b.d.Placeholder(len(b.args))
}

func quote(ident string) string { return `"` + ident + `"` }

func (b *builder) where(filters []Filter) error {
	for i, f := range filters {
		if i == 0 {
			b.sb.WriteString(" WHERE ")
		} else {
			b.sb.WriteString(" AND ")
		}
		col := quote(f.Column)
		switch f.Op {
		case OpEq:
			fmt.Fprintf(&b.sb, "%s = %s", col, b.arg(f.Value))
		case OpGte:
			fmt.Fprintf(&b.sb, "%s >= %s", col, b.arg(f.Value))
		case OpLt:
			fmt.Fprintf(&b.sb, "%s < %s", col, b.arg(f.Value))
		case OpIn:
			values, _ := f.Value.([]any)
			if len(values) == 0 {
				b.sb.WriteString("1 = 0")
				continue
			}
			marks := make([]string, len(values))
			for j, v := range values {
				marks[j] = b.arg(v)
			}
			fmt.Fprintf(&b.sb, "%s IN (%s)", col, strings.Join(marks, ", "))
		default:
			return fmt.Errorf("unsupported filter operator %q", f.Op)
		}
	}
	return nil
}

// BuildSelect renders q against table.
func BuildSelect(d Dialect, table string, q Query) (Statement, error) {
	if err := checkIdents(table, q); err != nil {
		return Statement{}, err
	}
	b := &builder{d: d}
	cols := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			if c == "*" {
				quoted[i] = c
				continue
			}
			quoted[i] = quote(c)
		}
		cols = strings.Join(quoted, ", ")
	}
	fmt.Fprintf(&b.sb, "SELECT %s FROM %s", cols, quote(table))
	if err := b.where(q.Filters); err != nil {
		return Statement{}, err
	}
	if q.Order != nil {
		dir := "ASC"
		if q.Order.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b.sb, " ORDER BY %s %s", quote(q.Order.Column), dir)
	}
	switch {
	case q.Limit > 0:
		fmt.Fprintf(&b.sb, " LIMIT %d", q.Limit)
	case q.Offset > 0 && d.Name == SQLite.Name:
		// sqlite only accepts OFFSET after a LIMIT
		b.sb.WriteString(" LIMIT -1")
	}
	if q.Offset > 0 {
		fmt.Fprintf(&b.sb, " OFFSET %d", q.Offset)
	}
	return Statement{SQL: b.sb.String(), Args: b.args}, nil
}

// BuildCount renders a COUNT(*) over table.
func BuildCount(d Dialect, table string, filters []Filter) (Statement, error) {
	if err := checkIdents(table, Query{Filters: filters}); err != nil {
		return Statement{}, err
	}
	b := &builder{d: d}
	fmt.Fprintf(&b.sb, "SELECT COUNT(*) FROM %s", quote(table))
	if err := b.where(filters); err != nil {
		return Statement{}, err
	}
	return Statement{SQL: b.sb.String(), Args: b.args}, nil
}

// BuildInsert renders an INSERT ... RETURNING * for row.
func BuildInsert(d Dialect, table string, row Row) (Statement, error) {
	cols := sortedColumns(row)
	if err := checkIdents(table, Query{Columns: cols}); err != nil {
		return Statement{}, err
	}
	if len(cols) == 0 {
		return Statement{SQL: fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", quote(table))}, nil
	}
	b := &builder{d: d}
	quoted := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
		marks[i] = b.arg(row[c])
	}
	fmt.Fprintf(&b.sb, "INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		quote(table), strings.Join(quoted, ", "), strings.Join(marks, ", "))
	return Statement{SQL: b.sb.String(), Args: b.args}, nil
}

// BuildUpdate renders an UPDATE of patch on the row with the given id.
func BuildUpdate(d Dialect, table string, id any, patch Row) (Statement, error) {
	cols := sortedColumns(patch)
	if len(cols) == 0 {
		return Statement{}, fmt.Errorf("update %s: empty patch", table)
	}
	if err := checkIdents(table, Query{Columns: cols}); err != nil {
		return Statement{}, err
	}
	b := &builder{d: d}
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = %s", quote(c), b.arg(patch[c]))
	}
	fmt.Fprintf(&b.sb, "UPDATE %s SET %s WHERE %s = %s RETURNING *",
		quote(table), strings.Join(sets, ", "), quote(IDColumn), b.arg(id))
	return Statement{SQL: b.sb.String(), Args: b.args}, nil
}

// BuildDelete renders a DELETE of the row with the given id.
func BuildDelete(d Dialect, table string, id any) (Statement, error) {
	if !ValidIdent(table) {
		return Statement{}, fmt.Errorf("invalid table name %q", table)
	}
	b := &builder{d: d}
	fmt.Fprintf(&b.sb, "DELETE FROM %s WHERE %s = %s RETURNING %s",
		quote(table), quote(IDColumn), b.arg(id), quote(IDColumn))
	return Statement{SQL: b.sb.String(), Args: b.args}, nil
}

func sortedColumns(row Row) []string {
	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Normalize converts driver values into the plain types rows carry:
// string, int64, float64, bool, time.Time or nil.
func Normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case [16]byte:
		return uuid.UUID(x).String()
	case uuid.UUID:
		return x.String()
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	case float32:
		return float64(x)
	case time.Time:
		return x
	}
	return v
}
