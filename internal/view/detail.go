package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/pkg/models"
)

// Phase is the detail screen state.
//
//	Loading ──► Ready ◄──► Editing
//	   │          │
//	   ├─► NotFound └──► Deleted
//	   └─► Error
type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseNotFound Phase = "not_found"
	PhaseError    Phase = "error"
	PhaseEditing  Phase = "editing"
	PhaseDeleted  Phase = "deleted"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Phase][]Phase{
	PhaseLoading:  {PhaseReady, PhaseNotFound, PhaseError},
	PhaseReady:    {PhaseEditing, PhaseDeleted, PhaseLoading},
	PhaseEditing:  {PhaseReady},
	PhaseNotFound: {PhaseLoading},
	PhaseError:    {PhaseLoading},
	// Deleted is terminal
}

// IsTransitionAllowed reports whether the detail screen may move from → to.
func IsTransitionAllowed(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Editable records expose a set of text fields that can be changed.
type Editable[T any] interface {
	EditableFields() []string
	FieldValue(name string) string
	WithFields(fields map[string]string) T
}

// Loader reads and deletes single records.
type Loader[T models.Record] interface {
	Get(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
}

// Saver persists an edited record and returns it as stored.
type Saver[T models.Record] interface {
	Update(ctx context.Context, record T) (T, error)
}

// DetailMessages are the success texts a detail screen posts.
type DetailMessages struct {
	Saved   string
	Deleted string
}

// DetailOptions configures a DetailView. A nil Saver makes the screen read-only.
type DetailOptions[T models.Record] struct {
	Saver     Saver[T]
	OnDeleted func()
	Messages  DetailMessages
	Logger    *slog.Logger
}

// DetailView shows one record and drives its edit/delete lifecycle.
type DetailView[T models.Record] struct {
	id        string
	src       Loader[T]
	saver     Saver[T]
	notes     *Notifier
	log       *slog.Logger
	onDeleted func()
	msgs      DetailMessages

	phase  Phase
	record T
	draft  map[string]string
	errMsg string
}

func NewDetailView[T models.Record](id string, src Loader[T], notes *Notifier, opts DetailOptions[T]) *DetailView[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	msgs := opts.Messages
	if msgs.Saved == "" {
		msgs.Saved = "Updated successfully"
	}
	if msgs.Deleted == "" {
		msgs.Deleted = "Deleted successfully"
	}
	return &DetailView[T]{
		id:        id,
		src:       src,
		saver:     opts.Saver,
		notes:     notes,
		log:       logger,
		onDeleted: opts.OnDeleted,
		msgs:      msgs,
		phase:     PhaseLoading,
	}
}

func (d *DetailView[T]) transition(to Phase) error {
	if !IsTransitionAllowed(d.phase, to) {
		return fmt.Errorf("%w: %s to %s", ErrTransition, d.phase, to)
	}
	d.phase = to
	return nil
}

func (d *DetailView[T]) Phase() Phase { return d.phase }

func (d *DetailView[T]) ID() string { return d.id }

// Record is the last loaded or saved record.
func (d *DetailView[T]) Record() T { return d.record }

// Err is the load failure message in the Error phase.
func (d *DetailView[T]) Err() string { return d.errMsg }

// Load fetches the record. It is valid initially and from Ready, NotFound or Error.
func (d *DetailView[T]) Load(ctx context.Context) error {
	if d.phase != PhaseLoading {
		if err := d.transition(PhaseLoading); err != nil {
			return err
		}
	}
	rec, err := d.src.Get(ctx, d.id)
	switch {
	case errors.Is(err, gateway.ErrNoRows):
		d.errMsg = ""
		return d.transition(PhaseNotFound)
	case err != nil:
		d.log.Error("failed to load record", "id", d.id, "error", err)
		d.errMsg = gateway.Message(err)
		d.transition(PhaseError)
		return err
	}
	d.record = rec
	d.errMsg = ""
	return d.transition(PhaseReady)
}

func (d *DetailView[T]) editable() (Editable[T], bool) {
	if d.saver == nil {
		return nil, false
	}
	e, ok := any(d.record).(Editable[T])
	return e, ok
}

// Editable reports whether Edit can succeed for this screen.
func (d *DetailView[T]) Editable() bool {
	_, ok := d.editable()
	return ok
}

// Edit enters edit mode with a draft of the editable fields.
func (d *DetailView[T]) Edit() error {
	e, ok := d.editable()
	if !ok {
		return ErrNotEditable
	}
	if err := d.transition(PhaseEditing); err != nil {
		return err
	}
	d.draft = make(map[string]string)
	for _, f := range e.EditableFields() {
		d.draft[f] = e.FieldValue(f)
	}
	return nil
}

// Draft returns a copy of the pending edits.
func (d *DetailView[T]) Draft() map[string]string {
	out := make(map[string]string, len(d.draft))
	for k, v := range d.draft {
		out[k] = v
	}
	return out
}

// SetField changes one draft field.
func (d *DetailView[T]) SetField(name, value string) error {
	if d.phase != PhaseEditing {
		return fmt.Errorf("%w: set field while %s", ErrTransition, d.phase)
	}
	if _, ok := d.draft[name]; !ok {
		return fmt.Errorf("field %q is not editable", name)
	}
	d.draft[name] = value
	return nil
}

// Cancel discards the draft.
func (d *DetailView[T]) Cancel() error {
	if d.phase != PhaseEditing {
		return fmt.Errorf("%w: cancel while %s", ErrTransition, d.phase)
	}
	d.draft = nil
	return d.transition(PhaseReady)
}

// Save writes the draft. On failure the screen stays in edit mode with the draft.
func (d *DetailView[T]) Save(ctx context.Context) error {
	if d.phase != PhaseEditing {
		return fmt.Errorf("%w: save while %s", ErrTransition, d.phase)
	}
	e, ok := d.editable()
	if !ok {
		return ErrNotEditable
	}
	saved, err := d.saver.Update(ctx, e.WithFields(d.draft))
	if err != nil {
		d.notes.Error(gateway.Message(err))
		return err
	}
	d.record = saved
	d.draft = nil
	d.notes.Success(d.msgs.Saved)
	return d.transition(PhaseReady)
}

// Delete removes the record and fires the OnDeleted callback.
func (d *DetailView[T]) Delete(ctx context.Context) error {
	if d.phase != PhaseReady {
		return fmt.Errorf("%w: delete while %s", ErrTransition, d.phase)
	}
	if err := d.src.Delete(ctx, d.id); err != nil {
		d.notes.Error(gateway.Message(err))
		return err
	}
	d.notes.Success(d.msgs.Deleted)
	if err := d.transition(PhaseDeleted); err != nil {
		return err
	}
	if d.onDeleted != nil {
		d.onDeleted()
	}
	return nil
}
