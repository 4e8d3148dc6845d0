package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

// createTestStore opens a fresh database in a temp directory
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	for i := 0; i < 2; i++ {
		s, err := Open(context.Background(), path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		s.Close()
	}
}

func TestCategoryCRUD(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	row, err := s.Insert(ctx, "category", gateway.Row{
		"job_name": "Engineer",
		"job_desc": "Build things",
		"job_req":  "Go",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !row.Bool("is_active", false) {
		t.Error("new jobs should default to active")
	}
	id := row.Int("id")
	if id == 0 {
		t.Fatalf("expected generated id, got %v", row["id"])
	}

	updated, err := s.Update(ctx, "category", id, gateway.Row{"is_active": false, "job_name": "Senior Engineer"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.String("job_name") != "Senior Engineer" || updated.Bool("is_active", true) {
		t.Errorf("unexpected update result: %v", updated)
	}

	active, err := s.Count(ctx, "category", gateway.Eq("is_active", true))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if active != 0 {
		t.Errorf("active count = %d, want 0", active)
	}

	if err := s.Delete(ctx, "category", id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "category", id); !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("second Delete = %v, want ErrNoRows", err)
	}
	if _, err := s.Update(ctx, "category", 999, gateway.Row{"job_name": "x"}); !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("Update missing = %v, want ErrNoRows", err)
	}
}

func TestSelectPagingAndFilters(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		if _, err := s.Insert(ctx, "category", gateway.Row{"job_name": "job", "job_desc": "d", "job_req": "r"}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	page, err := s.Select(ctx, "category", gateway.Query{
		Columns: []string{"id", "job_name"},
		Order:   &gateway.Order{Column: "id"},
		Offset:  15,
		Limit:   15,
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(page) != 5 {
		t.Fatalf("second page has %d rows, want 5", len(page))
	}
	if page[0].Int("id") != 16 {
		t.Errorf("first id on page 2 = %d, want 16", page[0].Int("id"))
	}

	some, err := s.Select(ctx, "category", gateway.Query{Filters: []gateway.Filter{gateway.In("id", 1, 3, 99)}})
	if err != nil {
		t.Fatalf("Select in: %v", err)
	}
	if len(some) != 2 {
		t.Errorf("in filter returned %d rows, want 2", len(some))
	}
}

func TestDeleteAccountCascadesProfile(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.Insert(ctx, "auth", gateway.Row{"id": "a1", "fname": "Ada", "email": "ada@example.com"}); err != nil {
		t.Fatalf("insert auth: %v", err)
	}
	if _, err := s.Insert(ctx, "profile", gateway.Row{"auth_id": "a1", "score": 90}); err != nil {
		t.Fatalf("insert profile: %v", err)
	}
	if _, err := s.Insert(ctx, "profile", gateway.Row{"auth_id": "missing"}); err == nil {
		t.Error("expected foreign key failure for unknown account")
	} else {
		var ge *gateway.Error
		if !errors.As(err, &ge) || ge.Code != "23503" {
			t.Errorf("expected foreign key gateway error, got %v", err)
		}
	}

	if err := s.Delete(ctx, "auth", "a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	n, err := s.Count(ctx, "profile")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("profile rows after cascade = %d, want 0", n)
	}
}

func TestSeed(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	if err := Seed(ctx, s, now); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	profiles, _ := s.Count(ctx, "profile")
	accounts, _ := s.Count(ctx, "auth")
	if profiles != 3 || accounts != 4 {
		t.Errorf("profiles=%d accounts=%d, want 3 and 4", profiles, accounts)
	}
	if err := Seed(ctx, s, now); err == nil {
		t.Error("second Seed should refuse a populated backend")
	}
}
