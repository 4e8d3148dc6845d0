// Package postgres implements the gateway directly against the Supabase
// Postgres database, bypassing the REST layer.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

// NewPool creates and verifies a pgxpool connection pool.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return pool, nil
}

// Gateway runs gateway operations on a pool.
type Gateway struct {
	pool *pgxpool.Pool
}

// New wraps an open pool.
func New(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// Open connects to databaseURL and wraps the pool.
func Open(ctx context.Context, databaseURL string) (*Gateway, error) {
	pool, err := NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return New(pool), nil
}

func (g *Gateway) Select(ctx context.Context, table string, q gateway.Query) ([]gateway.Row, error) {
	st, err := gateway.BuildSelect(gateway.Postgres, table, q)
	if err != nil {
		return nil, err
	}
	rows, err := g.pool.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, translate(err)
	}
	return collect(rows)
}

func (g *Gateway) Count(ctx context.Context, table string, filters ...gateway.Filter) (int, error) {
	st, err := gateway.BuildCount(gateway.Postgres, table, filters)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := g.pool.QueryRow(ctx, st.SQL, st.Args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return int(n), nil
}

func (g *Gateway) Insert(ctx context.Context, table string, row gateway.Row) (gateway.Row, error) {
	st, err := gateway.BuildInsert(gateway.Postgres, table, row)
	if err != nil {
		return nil, err
	}
	return g.one(ctx, st, table, nil)
}

func (g *Gateway) Update(ctx context.Context, table string, id any, patch gateway.Row) (gateway.Row, error) {
	st, err := gateway.BuildUpdate(gateway.Postgres, table, id, patch)
	if err != nil {
		return nil, err
	}
	return g.one(ctx, st, table, id)
}

func (g *Gateway) Delete(ctx context.Context, table string, id any) error {
	st, err := gateway.BuildDelete(gateway.Postgres, table, id)
	if err != nil {
		return err
	}
	_, err = g.one(ctx, st, table, id)
	return err
}

// Close releases the pool.
func (g *Gateway) Close() error {
	g.pool.Close()
	return nil
}

func (g *Gateway) one(ctx context.Context, st gateway.Statement, table string, id any) (gateway.Row, error) {
	rows, err := g.pool.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, translate(err)
	}
	out, err := collect(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, gateway.NoRows(table, id)
	}
	return out[0], nil
}

func collect(rows pgx.Rows) ([]gateway.Row, error) {
	defer rows.Close()
	fields := rows.FieldDescriptions()
	out := []gateway.Row{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row values: %w", err)
		}
		row := make(gateway.Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = normalize(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func normalize(v any) any {
	if n, ok := v.(pgtype.Numeric); ok {
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	}
	return gateway.Normalize(v)
}

// translate maps driver errors onto gateway errors so screens show the
// database message unchanged.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return gateway.ErrNoRows
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &gateway.Error{
			Status:  statusFor(pgErr.Code),
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}
	return err
}

func statusFor(code string) int {
	switch code {
	case "23503", "23505":
		return 409
	case "23514", "22P02", "23502":
		return 400
	case "42501":
		return 403
	case "42P01", "42703":
		return 404
	}
	return 500
}

var _ gateway.Gateway = (*Gateway)(nil)
