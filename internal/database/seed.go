package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

type seedCandidate struct {
	fname, lname, email, number, role string
	score, longevity                  int
	jobRole, bio, education, exp      string
}

var seedCandidates = []seedCandidate{
	{"Ada", "Obi", "ada.obi@example.com", "+2348010000001", "user", 91, 1460, "Backend Engineer",
		"Builds payment systems in Go.", "BSc Computer Science", "Paystack\nFlutterwave"},
	{"Tunde", "Bello", "tunde.bello@example.com", "+2348010000002", "user", 74, 730, "Frontend Engineer",
		"React and design systems.", "HND Computer Engineering", "Andela"},
	{"Chioma", "Eze", "chioma.eze@example.com", "+2348010000003", "user", 52, 200, "Data Analyst",
		"SQL, dashboards and reporting.", "BSc Statistics", "Interswitch"},
	{"Grace", "Adeyemi", "grace.adeyemi@example.com", "+2348010000004", "admin", 0, 0, "Recruiter",
		"", "", ""},
}

var seedJobs = []gateway.Row{
	{"job_name": "Backend Engineer", "job_desc": "Design services\nOwn the database layer", "job_req": "3+ years Go\nPostgres\nREST APIs", "is_active": true},
	{"job_name": "Product Designer", "job_desc": "Shape the hiring flow\nRun user research", "job_req": "Figma\nPortfolio", "is_active": true},
	{"job_name": "QA Engineer", "job_desc": "Write test plans", "job_req": "Automation experience", "is_active": false},
}

// Seed fills an empty backend with demo accounts, jobs and events.
// It refuses to touch a backend that already has accounts.
func Seed(ctx context.Context, g gateway.Gateway, now time.Time) error {
	n, err := g.Count(ctx, "auth")
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("backend already has %d accounts", n)
	}

	for _, c := range seedCandidates {
		id := uuid.NewString()
		if _, err := g.Insert(ctx, "auth", gateway.Row{
			"id": id, "fname": c.fname, "lname": c.lname,
			"email": c.email, "number": c.number, "role": c.role,
		}); err != nil {
			return fmt.Errorf("insert account %s: %w", c.email, err)
		}
		if c.role != "user" {
			continue
		}
		if _, err := g.Insert(ctx, "profile", gateway.Row{
			"auth_id": id, "score": c.score, "job_role": c.jobRole, "longevity": c.longevity,
			"bio": c.bio, "highest_education": c.education, "exp_new": c.exp,
		}); err != nil {
			return fmt.Errorf("insert profile %s: %w", c.email, err)
		}
	}

	for _, job := range seedJobs {
		if _, err := g.Insert(ctx, "category", job); err != nil {
			return fmt.Errorf("insert job %v: %w", job["job_name"], err)
		}
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC)
	events := []gateway.Row{
		{"title": "Technical interview", "description": "Go pairing session", "date": day.AddDate(0, 0, 2).Format(time.RFC3339), "email": seedCandidates[0].email},
		{"title": "Portfolio review", "description": "", "date": day.AddDate(0, 0, 5).Format(time.RFC3339), "email": seedCandidates[1].email},
	}
	for _, e := range events {
		if _, err := g.Insert(ctx, "events", e); err != nil {
			return fmt.Errorf("insert event %v: %w", e["title"], err)
		}
	}
	return nil
}
