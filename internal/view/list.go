// Package view holds the screen state shared by the CLI and the TUI: lists,
// detail/edit screens, creation forms and the notification slots.
package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

// PageSize is fixed for every list.
const PageSize = 15

// Source feeds a ListView.
type Source[T models.Record] interface {
	Page(ctx context.Context, offset, limit int) ([]T, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

// Toggler flips a row's status flag and returns the stored row.
type Toggler[T models.Record] interface {
	Toggle(ctx context.Context, row T) (T, error)
}

// ListMessages are the success texts a list posts.
type ListMessages struct {
	Deleted string
	Toggled string
}

// ListOptions configures a ListView.
type ListOptions[T models.Record] struct {
	// DetailPrefix builds detail paths, e.g. "/jobs/".
	DetailPrefix string
	Toggler      Toggler[T]
	Messages     ListMessages
	Logger       *slog.Logger
}

// ListView is a paginated table with client-side sorting of the loaded page.
type ListView[T models.Record] struct {
	src     Source[T]
	toggler Toggler[T]
	notes   *Notifier
	log     *slog.Logger
	prefix  string
	msgs    ListMessages

	rows    []T
	total   int
	page    int
	sortCol string
	desc    bool
}

// NewListView returns an unloaded list over src on page 1.
func NewListView[T models.Record](src Source[T], notes *Notifier, opts ListOptions[T]) *ListView[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	msgs := opts.Messages
	if msgs.Deleted == "" {
		msgs.Deleted = "Deleted successfully"
	}
	if msgs.Toggled == "" {
		msgs.Toggled = "Status updated"
	}
	return &ListView[T]{
		src:     src,
		toggler: opts.Toggler,
		notes:   notes,
		log:     logger,
		prefix:  opts.DetailPrefix,
		msgs:    msgs,
		page:    1,
		sortCol: "id",
	}
}

// Load fetches the total and the current page. Failures leave the list
// empty and are logged, not notified.
func (l *ListView[T]) Load(ctx context.Context) error {
	total, err := l.src.Count(ctx)
	if err != nil {
		l.clear()
		l.log.Error("failed to count rows", "error", err)
		return fmt.Errorf("count rows: %w", err)
	}
	rows, err := l.src.Page(ctx, (l.page-1)*PageSize, PageSize)
	if err != nil {
		l.clear()
		l.log.Error("failed to fetch page", "page", l.page, "error", err)
		return fmt.Errorf("fetch page %d: %w", l.page, err)
	}
	l.rows = rows
	l.total = total
	return nil
}

// Refresh reloads the current page. Creation forms use it as their callback.
func (l *ListView[T]) Refresh(ctx context.Context) error { return l.Load(ctx) }

func (l *ListView[T]) clear() {
	l.rows = nil
	l.total = 0
}

// Rows returns the loaded page in the current sort order.
func (l *ListView[T]) Rows() []T {
	return sortRecords(l.rows, l.sortCol, l.desc)
}

// SortBy toggles direction on the active column; a new column starts ascending.
func (l *ListView[T]) SortBy(column string) {
	if column == l.sortCol {
		l.desc = !l.desc
		return
	}
	l.sortCol = column
	l.desc = false
}

// Sort reports the active column and direction.
func (l *ListView[T]) Sort() (column string, desc bool) { return l.sortCol, l.desc }

// Total is the row count reported by the last load.
func (l *ListView[T]) Total() int { return l.total }

// Page is the current 1-based page.
func (l *ListView[T]) Page() int { return l.page }

// Pages is the page count, at least one.
func (l *ListView[T]) Pages() int {
	if l.total <= 0 {
		return 1
	}
	return (l.total + PageSize - 1) / PageSize
}

// GoTo loads page p, clamped to the valid range.
func (l *ListView[T]) GoTo(ctx context.Context, p int) error {
	if p < 1 {
		p = 1
	}
	if last := l.Pages(); p > last {
		p = last
	}
	l.page = p
	return l.Load(ctx)
}

// Next moves one page forward, stopping at the last page.
func (l *ListView[T]) Next(ctx context.Context) error { return l.GoTo(ctx, l.page+1) }

// Prev moves one page back, stopping at page 1.
func (l *ListView[T]) Prev(ctx context.Context) error { return l.GoTo(ctx, l.page-1) }

// DetailPath is where "view" navigates for id.
func (l *ListView[T]) DetailPath(id string) string { return l.prefix + id }

// Find returns the loaded row with id.
func (l *ListView[T]) Find(id string) (T, bool) {
	for _, r := range l.rows {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Delete removes id on the backend and then from the local page.
func (l *ListView[T]) Delete(ctx context.Context, id string) error {
	if err := l.src.Delete(ctx, id); err != nil {
		l.notes.Error(gateway.Message(err))
		return err
	}
	kept := make([]T, 0, len(l.rows))
	for _, r := range l.rows {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	l.rows = kept
	if l.total > 0 {
		l.total--
	}
	l.notes.Success(l.msgs.Deleted)
	return nil
}

// Toggle flips the status flag of a loaded row. The local row changes only
// after the backend accepted the write.
func (l *ListView[T]) Toggle(ctx context.Context, id string) error {
	if l.toggler == nil {
		return ErrNoToggle
	}
	row, ok := l.Find(id)
	if !ok {
		l.notes.Error(fmt.Sprintf("%s: %s", ErrNotLoaded, id))
		return ErrNotLoaded
	}
	updated, err := l.toggler.Toggle(ctx, row)
	if err != nil {
		l.notes.Error(gateway.Message(err))
		return err
	}
	for i, r := range l.rows {
		if r.RecordID() == id {
			l.rows[i] = updated
		}
	}
	l.notes.Success(l.msgs.Toggled)
	return nil
}
