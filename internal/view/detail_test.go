package view

import (
	"context"
	"errors"
	"testing"

	"github.com/khrees2412/talentdesk/pkg/models"
)

func newJobDetail(id string, src *stubJobs, notes *Notifier, onDeleted func()) *DetailView[models.Job] {
	return NewDetailView[models.Job](id, src, notes, DetailOptions[models.Job]{
		Saver:     src,
		OnDeleted: onDeleted,
		Messages:  DetailMessages{Saved: "Job details updated successfully", Deleted: "Job deleted successfully"},
		Logger:    discardLogger,
	})
}

func TestIsTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseLoading, PhaseReady, true},
		{PhaseLoading, PhaseEditing, false},
		{PhaseReady, PhaseEditing, true},
		{PhaseEditing, PhaseReady, true},
		{PhaseEditing, PhaseDeleted, false},
		{PhaseReady, PhaseDeleted, true},
		{PhaseDeleted, PhaseLoading, false},
		{PhaseNotFound, PhaseEditing, false},
	}
	for _, tt := range tests {
		if got := IsTransitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("IsTransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDetailLoadPhases(t *testing.T) {
	ctx := context.Background()
	src := newStubJobs(2)

	d := newJobDetail("1", src, NewNotifier(), nil)
	if err := d.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Phase() != PhaseReady || d.Record().Name != "Job 01" {
		t.Errorf("phase=%s record=%+v", d.Phase(), d.Record())
	}

	missing := newJobDetail("42", src, NewNotifier(), nil)
	if err := missing.Load(ctx); err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if missing.Phase() != PhaseNotFound {
		t.Errorf("missing record phase = %s", missing.Phase())
	}

	src.getErr = errBackend
	broken := newJobDetail("1", src, NewNotifier(), nil)
	if err := broken.Load(ctx); err == nil {
		t.Fatal("expected load error")
	}
	if broken.Phase() != PhaseError || broken.Err() != errBackend.Message {
		t.Errorf("phase=%s err=%q", broken.Phase(), broken.Err())
	}
}

func TestDetailEditCancelLeavesRecord(t *testing.T) {
	ctx := context.Background()
	src := newStubJobs(1)
	d := newJobDetail("1", src, NewNotifier(), nil)
	if err := d.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := d.Edit(); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if err := d.SetField(models.JobFieldName, "Changed"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := d.SetField("is_active", "false"); err == nil {
		t.Error("non-editable field should be rejected")
	}
	if err := d.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if d.Phase() != PhaseReady || d.Record().Name != "Job 01" {
		t.Errorf("cancel should restore the canonical record, got %+v", d.Record())
	}
	if src.jobs[0].Name != "Job 01" {
		t.Error("cancel must not write")
	}
}

func TestDetailSave(t *testing.T) {
	ctx := context.Background()
	src := newStubJobs(1)
	notes := NewNotifier()
	d := newJobDetail("1", src, notes, nil)
	if err := d.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := d.Edit(); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	before := d.Record()
	d.SetField(models.JobFieldRequirements, "Go\nSQL")

	src.updateErr = errBackend
	if err := d.Save(ctx); err == nil {
		t.Fatal("expected save error")
	}
	if d.Phase() != PhaseEditing || d.Draft()[models.JobFieldRequirements] != "Go\nSQL" {
		t.Errorf("failed save should keep the draft, phase=%s", d.Phase())
	}
	if d.Record() != before {
		t.Errorf("failed save changed the record: %+v, want %+v", d.Record(), before)
	}
	if notes.Current(SeverityError) != errBackend.Message {
		t.Errorf("error = %q", notes.Current(SeverityError))
	}

	src.updateErr = nil
	if err := d.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.Phase() != PhaseReady || d.Record().Requirements != "Go\nSQL" {
		t.Errorf("phase=%s record=%+v", d.Phase(), d.Record())
	}
	if notes.Current(SeveritySuccess) != "Job details updated successfully" {
		t.Errorf("success = %q", notes.Current(SeveritySuccess))
	}
	if err := d.Save(ctx); !errors.Is(err, ErrTransition) {
		t.Errorf("Save outside edit = %v, want ErrTransition", err)
	}
}

func TestDetailDelete(t *testing.T) {
	ctx := context.Background()
	src := newStubJobs(1)
	notes := NewNotifier()
	navigated := false
	d := newJobDetail("1", src, notes, func() { navigated = true })

	if err := d.Delete(ctx); !errors.Is(err, ErrTransition) {
		t.Errorf("Delete before load = %v, want ErrTransition", err)
	}
	if err := d.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	src.deleteErr = errBackend
	if err := d.Delete(ctx); err == nil {
		t.Fatal("expected delete error")
	}
	if d.Phase() != PhaseReady || navigated {
		t.Errorf("failed delete: phase=%s navigated=%v", d.Phase(), navigated)
	}

	src.deleteErr = nil
	if err := d.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if d.Phase() != PhaseDeleted || !navigated {
		t.Errorf("phase=%s navigated=%v", d.Phase(), navigated)
	}
	if err := d.Load(ctx); !errors.Is(err, ErrTransition) {
		t.Errorf("Load after delete = %v, want ErrTransition", err)
	}
}

func TestReadOnlyDetail(t *testing.T) {
	ctx := context.Background()
	src := &stubUsers{profiles: map[string]models.UserProfile{
		"u1": {Account: models.Account{ID: "u1", FirstName: "Ada"}, Profile: models.Profile{AuthID: "u1", Score: 88}},
	}}
	d := NewDetailView[models.UserProfile]("u1", src, NewNotifier(), DetailOptions[models.UserProfile]{Logger: discardLogger})
	if err := d.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Editable() {
		t.Error("user profile should be read-only")
	}
	if err := d.Edit(); !errors.Is(err, ErrNotEditable) {
		t.Errorf("Edit = %v, want ErrNotEditable", err)
	}
	if err := d.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
