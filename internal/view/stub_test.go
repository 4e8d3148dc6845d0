package view

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// stubJobs is an in-memory job repository.
type stubJobs struct {
	jobs       []models.Job
	countErr   error
	pageErr    error
	deleteErr  error
	toggleErr  error
	updateErr  error
	getErr     error
	pageCalls  int
	lastOffset int
}

func newStubJobs(n int) *stubJobs {
	s := &stubJobs{}
	for i := 1; i <= n; i++ {
		s.jobs = append(s.jobs, models.Job{
			ID:       fmt.Sprint(i),
			Name:     fmt.Sprintf("Job %02d", i),
			IsActive: i%2 == 1,
		})
	}
	return s
}

func (s *stubJobs) Page(_ context.Context, offset, limit int) ([]models.Job, error) {
	s.pageCalls++
	s.lastOffset = offset
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	if offset >= len(s.jobs) {
		return []models.Job{}, nil
	}
	end := offset + limit
	if end > len(s.jobs) {
		end = len(s.jobs)
	}
	out := make([]models.Job, end-offset)
	copy(out, s.jobs[offset:end])
	return out, nil
}

func (s *stubJobs) Count(context.Context) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.jobs), nil
}

func (s *stubJobs) index(id string) int {
	for i, j := range s.jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

func (s *stubJobs) Get(_ context.Context, id string) (models.Job, error) {
	if s.getErr != nil {
		return models.Job{}, s.getErr
	}
	i := s.index(id)
	if i < 0 {
		return models.Job{}, gateway.NoRows("category", id)
	}
	return s.jobs[i], nil
}

func (s *stubJobs) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	i := s.index(id)
	if i < 0 {
		return gateway.NoRows("category", id)
	}
	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	return nil
}

func (s *stubJobs) Toggle(_ context.Context, job models.Job) (models.Job, error) {
	if s.toggleErr != nil {
		return models.Job{}, s.toggleErr
	}
	i := s.index(job.ID)
	if i < 0 {
		return models.Job{}, gateway.NoRows("category", job.ID)
	}
	s.jobs[i].IsActive = !job.IsActive
	return s.jobs[i], nil
}

func (s *stubJobs) Update(_ context.Context, job models.Job) (models.Job, error) {
	if s.updateErr != nil {
		return models.Job{}, s.updateErr
	}
	i := s.index(job.ID)
	if i < 0 {
		return models.Job{}, gateway.NoRows("category", job.ID)
	}
	s.jobs[i] = job
	return job, nil
}

// stubUsers serves read-only user profiles.
type stubUsers struct {
	profiles map[string]models.UserProfile
}

func (s *stubUsers) Get(_ context.Context, id string) (models.UserProfile, error) {
	up, ok := s.profiles[id]
	if !ok {
		return models.UserProfile{}, gateway.NoRows("profile", id)
	}
	return up, nil
}

func (s *stubUsers) Delete(_ context.Context, id string) error {
	if _, ok := s.profiles[id]; !ok {
		return gateway.NoRows("auth", id)
	}
	delete(s.profiles, id)
	return nil
}

var errBackend = &gateway.Error{Status: 500, Message: "permission denied for table category"}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

