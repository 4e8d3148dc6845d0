package tui

import (
	"context"
	"strings"
	"time"

	"github.com/khrees2412/talentdesk/internal/repository"
	"github.com/khrees2412/talentdesk/internal/view"
	"github.com/khrees2412/talentdesk/pkg/models"
)

// Messages posted after a successful create.
const (
	JobCreatedMessage   = "Job successfully added!"
	EventCreatedMessage = "Event created successfully."
)

// Event form field names.
const (
	EventFieldTitle       = "title"
	EventFieldDescription = "description"
	EventFieldDate        = "date"
	EventFieldEmail       = "email"
)

// NewJobForm builds the "add job" form. Every field is required.
func NewJobForm(jobs *repository.Jobs, onCreated func(string)) *view.CreateForm {
	fields := []view.Field{
		{Name: models.JobFieldName, Label: "Job Name", Required: true},
		{Name: models.JobFieldDescription, Label: "Description", Required: true, Multiline: true},
		{Name: models.JobFieldRequirements, Label: "Requirements", Required: true, Multiline: true},
	}
	submit := func(ctx context.Context, v map[string]string) error {
		_, err := jobs.Create(ctx, models.Job{
			Name:         strings.TrimSpace(v[models.JobFieldName]),
			Description:  v[models.JobFieldDescription],
			Requirements: v[models.JobFieldRequirements],
		})
		return err
	}
	return view.NewCreateForm(fields, submit, JobCreatedMessage, onCreated)
}

// NewEventForm builds the "create event" form. Description is optional and
// the invitee must be one of emails when that list is non-empty.
func NewEventForm(events *repository.Events, emails []string, loc *time.Location, onCreated func(string)) *view.CreateForm {
	fields := []view.Field{
		{Name: EventFieldTitle, Label: "Title", Required: true},
		{Name: EventFieldDescription, Label: "Description", Multiline: true},
		{Name: EventFieldDate, Label: "Date (YYYY-MM-DD HH:MM)", Required: true},
		{Name: EventFieldEmail, Label: "Invitee email", Required: true, Choices: emails},
	}
	submit := func(ctx context.Context, v map[string]string) error {
		date, err := view.ParseDateTime(strings.TrimSpace(v[EventFieldDate]), loc)
		if err != nil {
			return err
		}
		_, err = events.Create(ctx, models.Event{
			Title:       strings.TrimSpace(v[EventFieldTitle]),
			Description: v[EventFieldDescription],
			Date:        date,
			Email:       strings.TrimSpace(v[EventFieldEmail]),
		})
		return err
	}
	return view.NewCreateForm(fields, submit, EventCreatedMessage, onCreated)
}

// fill prompts for every field of form and submits it, re-prompting once
// per failed attempt until the user gives up with an empty answer.
func (s *Session) fill(ctx context.Context, form *view.CreateForm) error {
	form.Open()
	for form.IsOpen() {
		for _, f := range form.Fields() {
			label := f.Label
			if len(f.Choices) > 0 {
				label += " [" + strings.Join(f.Choices, ", ") + "]"
			}
			var (
				value string
				err   error
			)
			if f.Multiline {
				value, err = s.promptMultiline(label)
			} else {
				value, err = s.prompt(label + ": ")
			}
			if err != nil {
				return err
			}
			if err := form.Set(f.Name, value); err != nil {
				s.println(err.Error())
			}
		}
		if form.Submit(ctx) == nil {
			return nil
		}
		s.println(form.Err())
		retry, err := s.confirm("Try again?")
		if err != nil {
			return err
		}
		if !retry {
			form.Close()
		}
	}
	return nil
}
