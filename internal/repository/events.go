package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var eventColumns = []string{"id", "title", "description", "date", "email"}

// Events manages interview events.
type Events struct {
	g gateway.Gateway
}

func NewEvents(g gateway.Gateway) *Events { return &Events{g: g} }

// List returns every event by date.
func (r *Events) List(ctx context.Context) ([]models.Event, error) {
	return r.query(ctx, nil)
}

// Month returns the events falling in the given month of loc.
func (r *Events) Month(ctx context.Context, year int, month time.Month, loc *time.Location) ([]models.Event, error) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	return r.query(ctx, []gateway.Filter{
		{Column: "date", Op: gateway.OpGte, Value: stamp(start)},
		{Column: "date", Op: gateway.OpLt, Value: stamp(end)},
	})
}

// CountFrom counts events at or after t.
func (r *Events) CountFrom(ctx context.Context, t time.Time) (int, error) {
	return r.g.Count(ctx, TableEvents, gateway.Filter{Column: "date", Op: gateway.OpGte, Value: stamp(t)})
}

func (r *Events) Create(ctx context.Context, e models.Event) (models.Event, error) {
	row, err := r.g.Insert(ctx, TableEvents, gateway.Row{
		"title":       e.Title,
		"description": e.Description,
		"date":        stamp(e.Date),
		"email":       e.Email,
	})
	if err != nil {
		return models.Event{}, err
	}
	return eventFromRow(row), nil
}

func (r *Events) Delete(ctx context.Context, id string) error {
	return r.g.Delete(ctx, TableEvents, idArg(id))
}

func (r *Events) query(ctx context.Context, filters []gateway.Filter) ([]models.Event, error) {
	rows, err := r.g.Select(ctx, TableEvents, gateway.Query{
		Columns: eventColumns,
		Filters: filters,
		Order:   &gateway.Order{Column: "date"},
	})
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	out := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

// stamp renders timestamps in UTC so text-stored dates order correctly.
func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func eventFromRow(row gateway.Row) models.Event {
	return models.Event{
		ID:          row.String("id"),
		Title:       row.String("title"),
		Description: row.String("description"),
		Date:        row.Time("date"),
		Email:       row.String("email"),
	}
}
