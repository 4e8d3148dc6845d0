package view

import (
	"context"
	"errors"
	"testing"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

func newJobList(src *stubJobs, notes *Notifier) *ListView[models.Job] {
	return NewListView[models.Job](src, notes, ListOptions[models.Job]{
		DetailPrefix: "/jobs/",
		Toggler:      src,
		Messages:     ListMessages{Deleted: "Job successfully deleted!"},
		Logger:       discardLogger,
	})
}

func TestListPagination(t *testing.T) {
	src := newStubJobs(32)
	l := newJobList(src, NewNotifier())
	ctx := context.Background()

	if err := l.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Pages() != 3 || len(l.Rows()) != PageSize || l.Total() != 32 {
		t.Fatalf("pages=%d rows=%d total=%d", l.Pages(), len(l.Rows()), l.Total())
	}

	if err := l.GoTo(ctx, 3); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if src.lastOffset != 30 || len(l.Rows()) != 2 {
		t.Errorf("page 3 offset=%d rows=%d", src.lastOffset, len(l.Rows()))
	}

	if err := l.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if l.Page() != 3 {
		t.Errorf("Next past the end moved to page %d", l.Page())
	}
	if err := l.GoTo(ctx, 0); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if l.Page() != 1 {
		t.Errorf("GoTo(0) landed on page %d", l.Page())
	}
}

func TestListPagesMinimumOne(t *testing.T) {
	l := newJobList(newStubJobs(0), NewNotifier())
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Pages() != 1 {
		t.Errorf("Pages() = %d, want 1", l.Pages())
	}
}

func TestListLoadFailureLeavesEmpty(t *testing.T) {
	src := newStubJobs(5)
	notes := NewNotifier()
	l := newJobList(src, notes)
	ctx := context.Background()
	if err := l.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	src.pageErr = errBackend
	if err := l.Load(ctx); err == nil {
		t.Fatal("expected load error")
	}
	if len(l.Rows()) != 0 || l.Total() != 0 {
		t.Errorf("failed load should leave the list empty, got %d rows total %d", len(l.Rows()), l.Total())
	}
	if len(notes.Active()) != 0 {
		t.Error("load failures are logged, not notified")
	}
}

func TestListSortToggles(t *testing.T) {
	src := &stubJobs{jobs: []models.Job{
		{ID: "10", Name: "beta"},
		{ID: "9", Name: "alpha"},
		{ID: "11", Name: "Gamma"},
	}}
	l := newJobList(src, NewNotifier())
	ctx := context.Background()
	if err := l.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	calls := src.pageCalls

	ids := func() []string {
		var out []string
		for _, r := range l.Rows() {
			out = append(out, r.ID)
		}
		return out
	}
	tests := []struct {
		name   string
		column string
		want   []string
	}{
		{"default id ascending is numeric", "", []string{"9", "10", "11"}},
		{"same column flips to descending", "id", []string{"11", "10", "9"}},
		{"new column starts ascending", "name", []string{"9", "10", "11"}},
		{"name descending", "name", []string{"11", "10", "9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.column != "" {
				l.SortBy(tt.column)
			}
			got := ids()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
	if src.pageCalls != calls {
		t.Error("sorting must not refetch")
	}
}

func TestListDelete(t *testing.T) {
	src := newStubJobs(3)
	notes := NewNotifier()
	l := newJobList(src, notes)
	ctx := context.Background()
	if err := l.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := l.Delete(ctx, "2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(l.Rows()) != 2 || l.Total() != 2 {
		t.Errorf("rows=%d total=%d after delete", len(l.Rows()), l.Total())
	}
	if _, ok := l.Find("2"); ok {
		t.Error("deleted row still present")
	}
	if got := notes.Current(SeveritySuccess); got != "Job successfully deleted!" {
		t.Errorf("success = %q", got)
	}

	err := l.Delete(ctx, "99")
	if !errors.Is(err, gateway.ErrNoRows) {
		t.Errorf("Delete missing = %v", err)
	}
	if notes.Current(SeverityError) == "" {
		t.Error("missing id should post an error")
	}
	if l.Total() != 2 {
		t.Errorf("failed delete changed total to %d", l.Total())
	}
}

func TestListToggle(t *testing.T) {
	src := newStubJobs(2)
	notes := NewNotifier()
	l := newJobList(src, notes)
	ctx := context.Background()
	if err := l.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := l.Toggle(ctx, "1"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if row, _ := l.Find("1"); row.IsActive {
		t.Error("job 1 should be inactive after toggle")
	}

	src.toggleErr = errBackend
	if err := l.Toggle(ctx, "2"); err == nil {
		t.Fatal("expected toggle error")
	}
	if row, _ := l.Find("2"); row.IsActive {
		t.Error("failed toggle must not change the local row")
	}
	if got := notes.Current(SeverityError); got != errBackend.Message {
		t.Errorf("error = %q", got)
	}
}

func TestListWithoutToggler(t *testing.T) {
	src := newStubJobs(1)
	l := NewListView[models.Job](src, NewNotifier(), ListOptions[models.Job]{Logger: discardLogger})
	if err := l.Toggle(context.Background(), "1"); !errors.Is(err, ErrNoToggle) {
		t.Errorf("Toggle = %v, want ErrNoToggle", err)
	}
}

func TestListDetailPath(t *testing.T) {
	l := newJobList(newStubJobs(1), NewNotifier())
	if got := l.DetailPath("7"); got != "/jobs/7" {
		t.Errorf("DetailPath = %q", got)
	}
}
