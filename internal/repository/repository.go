// Package repository maps the backend tables onto the console's models.
// Each repository is a thin layer over one gateway handle.
package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

// Table names on the backend.
const (
	TableAccounts = "auth"
	TableProfiles = "profile"
	TableJobs     = "category"
	TableEvents   = "events"
)

// Set groups the repositories that share one gateway.
type Set struct {
	Users  *Users
	Jobs   *Jobs
	Events *Events
}

// NewSet builds every repository over g.
func NewSet(g gateway.Gateway) *Set {
	return &Set{
		Users:  NewUsers(g),
		Jobs:   NewJobs(g),
		Events: NewEvents(g),
	}
}

// Summary collects the dashboard figures.
func (s *Set) Summary(ctx context.Context, now time.Time) (models.Summary, error) {
	var (
		sum models.Summary
		err error
	)
	if sum.Users, err = s.Users.Count(ctx); err != nil {
		return sum, fmt.Errorf("count users: %w", err)
	}
	if sum.Jobs, err = s.Jobs.Count(ctx); err != nil {
		return sum, fmt.Errorf("count jobs: %w", err)
	}
	if sum.ActiveJobs, err = s.Jobs.CountActive(ctx); err != nil {
		return sum, fmt.Errorf("count active jobs: %w", err)
	}
	if sum.UpcomingEvents, err = s.Events.CountFrom(ctx, now); err != nil {
		return sum, fmt.Errorf("count events: %w", err)
	}
	return sum, nil
}

// idArg passes numeric ids as integers so every backend compares them natively.
func idArg(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

func one(rows []gateway.Row, table string, id string) (gateway.Row, error) {
	if len(rows) == 0 {
		return nil, gateway.NoRows(table, id)
	}
	return rows[0], nil
}
