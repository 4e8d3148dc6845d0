package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/khrees2412/talentdesk/internal/database"
	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/internal/gateway/postgrest"
	"github.com/khrees2412/talentdesk/pkg/models"
)

func newTestSet(t *testing.T) (*Set, *database.Store) {
	t.Helper()
	store, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "repo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewSet(store), store
}

func addUser(t *testing.T, g gateway.Gateway, id, fname, email string, score int) {
	t.Helper()
	ctx := context.Background()
	if _, err := g.Insert(ctx, TableAccounts, gateway.Row{"id": id, "fname": fname, "lname": "Test", "email": email, "role": "user"}); err != nil {
		t.Fatalf("insert account: %v", err)
	}
	if _, err := g.Insert(ctx, TableProfiles, gateway.Row{"auth_id": id, "score": score, "longevity": 730, "bio": "bio"}); err != nil {
		t.Fatalf("insert profile: %v", err)
	}
}

func TestUsersPageJoinsAccounts(t *testing.T) {
	set, store := newTestSet(t)
	ctx := context.Background()
	addUser(t, store, "b", "Bola", "bola@example.com", 70)
	addUser(t, store, "a", "Ada", "ada@example.com", 90)
	if _, err := store.Insert(ctx, TableAccounts, gateway.Row{"id": "c", "fname": "NoProfile"}); err != nil {
		t.Fatalf("insert account: %v", err)
	}

	users, err := set.Users.Page(ctx, 0, 15)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].ID != "a" || users[0].Score != 90 || users[1].FirstName != "Bola" {
		t.Errorf("unexpected page: %+v", users)
	}

	n, err := set.Users.Count(ctx)
	if err != nil || n != 2 {
		t.Errorf("Count = %d, %v; want 2 profiles", n, err)
	}
}

func TestUsersProfiles(t *testing.T) {
	set, store := newTestSet(t)
	ctx := context.Background()
	addUser(t, store, "b", "Bola", "bola@example.com", 70)
	addUser(t, store, "a", "Ada", "ada@example.com", 90)

	all, err := set.Users.Profiles(ctx)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(all) != 2 || all[0].Account.FirstName != "Ada" || all[1].Profile.Score != 70 {
		t.Errorf("unexpected profiles: %+v", all)
	}
}

func TestUsersCountOverRESTWithoutIDColumn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sel := r.URL.Query().Get("select"); r.URL.Path == "/rest/v1/profile" && strings.Contains(sel, "id") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Range", "0-1/2")
	}))
	defer srv.Close()
	client, err := postgrest.New(srv.URL, "anon-key", postgrest.WithRateLimit(0, 0))
	if err != nil {
		t.Fatalf("postgrest.New: %v", err)
	}

	n, err := NewUsers(client).Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestUsersGet(t *testing.T) {
	set, store := newTestSet(t)
	ctx := context.Background()
	addUser(t, store, "a", "Ada", "ada@example.com", 90)

	up, err := set.Users.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if up.Account.Email != "ada@example.com" || up.Profile.Score != 90 || up.Profile.LongevityDays != 730 {
		t.Errorf("unexpected profile: %+v", up)
	}

	if _, err := set.Users.Get(ctx, "nobody"); !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("Get missing = %v, want ErrNoRows", err)
	}
}

func TestUsersDeleteAndEmails(t *testing.T) {
	set, store := newTestSet(t)
	ctx := context.Background()
	addUser(t, store, "b", "Bola", "bola@example.com", 70)
	addUser(t, store, "a", "Ada", "ada@example.com", 90)

	emails, err := set.Users.Emails(ctx)
	if err != nil {
		t.Fatalf("Emails: %v", err)
	}
	if !reflect.DeepEqual(emails, []string{"ada@example.com", "bola@example.com"}) {
		t.Errorf("Emails = %v", emails)
	}

	if err := set.Users.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := set.Users.Delete(ctx, "a"); !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("second Delete = %v, want ErrNoRows", err)
	}
	if n, _ := set.Users.Count(ctx); n != 1 {
		t.Errorf("Count after delete = %d, want 1", n)
	}
}

func TestJobsLifecycle(t *testing.T) {
	set, _ := newTestSet(t)
	ctx := context.Background()

	created, err := set.Jobs.Create(ctx, models.Job{Name: "Engineer", Description: "Build\nShip", Requirements: "Go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsActive || created.ID == "" {
		t.Errorf("unexpected created job: %+v", created)
	}

	edited := created.WithFields(map[string]string{models.JobFieldName: "Senior Engineer"})
	saved, err := set.Jobs.Update(ctx, edited)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved.Name != "Senior Engineer" || saved.Description != "Build\nShip" {
		t.Errorf("unexpected saved job: %+v", saved)
	}

	toggled, err := set.Jobs.Toggle(ctx, saved)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if toggled.IsActive {
		t.Error("Toggle should deactivate an active job")
	}
	if n, _ := set.Jobs.CountActive(ctx); n != 0 {
		t.Errorf("CountActive = %d, want 0", n)
	}

	got, err := set.Jobs.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.IsActive || got.Name != "Senior Engineer" {
		t.Errorf("Get = %+v", got)
	}

	if err := set.Jobs.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := set.Jobs.Get(ctx, created.ID); !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("Get deleted = %v, want ErrNoRows", err)
	}
	if _, err := set.Jobs.Toggle(ctx, got); !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("Toggle deleted = %v, want ErrNoRows", err)
	}
}

func TestJobsPage(t *testing.T) {
	set, _ := newTestSet(t)
	ctx := context.Background()
	for i := 0; i < 17; i++ {
		if _, err := set.Jobs.Create(ctx, models.Job{Name: "job", Description: "d", Requirements: "r"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	page2, err := set.Jobs.Page(ctx, 15, 15)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(page2) != 2 || page2[0].ID != "16" {
		t.Errorf("page 2 = %+v", page2)
	}
}

func TestEventsMonthAndSummary(t *testing.T) {
	set, store := newTestSet(t)
	ctx := context.Background()
	addUser(t, store, "a", "Ada", "ada@example.com", 90)

	dates := []time.Time{
		time.Date(2026, time.February, 28, 23, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if _, err := set.Events.Create(ctx, models.Event{Title: "Interview", Date: d, Email: "ada@example.com"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	march, err := set.Events.Month(ctx, 2026, time.March, time.UTC)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if len(march) != 2 {
		t.Fatalf("March has %d events, want 2", len(march))
	}
	if !march[0].Date.Equal(dates[1]) {
		t.Errorf("first March event at %v, want %v", march[0].Date, dates[1])
	}

	if _, err := set.Jobs.Create(ctx, models.Job{Name: "x", Description: "d", Requirements: "r"}); err != nil {
		t.Fatalf("Create job: %v", err)
	}
	sum, err := set.Summary(ctx, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := models.Summary{Users: 1, Jobs: 1, ActiveJobs: 1, UpcomingEvents: 2}
	if sum != want {
		t.Errorf("Summary = %+v, want %+v", sum, want)
	}

	all, _ := set.Events.List(ctx)
	if err := set.Events.Delete(ctx, all[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rest, _ := set.Events.List(ctx); len(rest) != 3 {
		t.Errorf("events after delete = %d, want 3", len(rest))
	}
}
