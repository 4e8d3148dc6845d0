package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

func (s *Store) Select(ctx context.Context, table string, q gateway.Query) ([]gateway.Row, error) {
	st, err := gateway.BuildSelect(gateway.SQLite, table, q)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, translate(err)
	}
	return scanRows(rows)
}

func (s *Store) Count(ctx context.Context, table string, filters ...gateway.Filter) (int, error) {
	st, err := gateway.BuildCount(gateway.SQLite, table, filters)
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, st.SQL, st.Args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (s *Store) Insert(ctx context.Context, table string, row gateway.Row) (gateway.Row, error) {
	st, err := gateway.BuildInsert(gateway.SQLite, table, row)
	if err != nil {
		return nil, err
	}
	return s.one(ctx, st, table, nil)
}

func (s *Store) Update(ctx context.Context, table string, id any, patch gateway.Row) (gateway.Row, error) {
	st, err := gateway.BuildUpdate(gateway.SQLite, table, id, patch)
	if err != nil {
		return nil, err
	}
	return s.one(ctx, st, table, id)
}

func (s *Store) Delete(ctx context.Context, table string, id any) error {
	st, err := gateway.BuildDelete(gateway.SQLite, table, id)
	if err != nil {
		return err
	}
	_, err = s.one(ctx, st, table, id)
	return err
}

func (s *Store) one(ctx context.Context, st gateway.Statement, table string, id any) (gateway.Row, error) {
	rows, err := s.db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, translate(err)
	}
	out, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, gateway.NoRows(table, id)
	}
	return out[0], nil
}

func scanRows(rows *sql.Rows) ([]gateway.Row, error) {
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	out := []gateway.Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(gateway.Row, len(cols))
		for i, col := range cols {
			row[col] = gateway.Normalize(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// translate gives constraint failures the same shape the hosted backend uses.
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return gateway.ErrNoRows
	}
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		status := 500
		code := ""
		switch sqErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			status, code = 409, "23503"
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			status, code = 409, "23505"
		case sqlite3.ErrConstraintNotNull:
			status, code = 400, "23502"
		}
		return &gateway.Error{
			Status:  status,
			Code:    code,
			Message: strings.TrimSpace(sqErr.Error()),
		}
	}
	return err
}

var _ gateway.Gateway = (*Store)(nil)
