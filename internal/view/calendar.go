package view

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khrees2412/talentdesk/pkg/models"
)

// MonthSource returns the events of one month.
type MonthSource interface {
	Month(ctx context.Context, year int, month time.Month, loc *time.Location) ([]models.Event, error)
}

// Calendar is the interview month grid.
type Calendar struct {
	src    MonthSource
	loc    *time.Location
	log    *slog.Logger
	year   int
	month  time.Month
	events []models.Event
}

// NewCalendar opens on the month containing now.
func NewCalendar(src MonthSource, now time.Time, logger *slog.Logger) *Calendar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calendar{
		src:   src,
		loc:   now.Location(),
		log:   logger,
		year:  now.Year(),
		month: now.Month(),
	}
}

// Load fetches the displayed month. Failures leave it empty.
func (c *Calendar) Load(ctx context.Context) error {
	events, err := c.src.Month(ctx, c.year, c.month, c.loc)
	if err != nil {
		c.events = nil
		c.log.Error("failed to fetch events", "month", c.Title(), "error", err)
		return fmt.Errorf("fetch events: %w", err)
	}
	c.events = events
	return nil
}

func (c *Calendar) Month() (int, time.Month) { return c.year, c.month }

func (c *Calendar) Title() string { return fmt.Sprintf("%s %d", c.month, c.year) }

func (c *Calendar) Location() *time.Location { return c.loc }

func (c *Calendar) Events() []models.Event { return c.events }

// Days counts events per day of the displayed month.
func (c *Calendar) Days() map[int]int {
	return models.EventDays(c.events, c.year, c.month, c.loc)
}

// On returns the events on day d of the displayed month.
func (c *Calendar) On(d int) []models.Event {
	var out []models.Event
	for _, e := range c.events {
		t := e.Date.In(c.loc)
		if t.Year() == c.year && t.Month() == c.month && t.Day() == d {
			out = append(out, e)
		}
	}
	return out
}

// Shift moves the grid by n months and reloads.
func (c *Calendar) Shift(ctx context.Context, n int) error {
	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, c.loc).AddDate(0, n, 0)
	c.year, c.month = first.Year(), first.Month()
	return c.Load(ctx)
}

var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseDateTime reads an event date typed by the user, in loc unless the
// value carries its own offset.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD HH:MM", value)
}
