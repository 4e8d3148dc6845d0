package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

// Field is one input of a creation form.
type Field struct {
	Name      string
	Label     string
	Required  bool
	Multiline bool
	// Choices restricts the value to a fixed list when set.
	Choices []string
}

// SubmitFunc performs the insert for a form.
type SubmitFunc func(ctx context.Context, values map[string]string) error

// CreateForm is the creation modal: a set of fields, inline error text and
// a callback fired once the insert succeeded.
type CreateForm struct {
	fields    []Field
	values    map[string]string
	open      bool
	errMsg    string
	submit    SubmitFunc
	onCreated func(message string)
	message   string
}

// NewCreateForm builds a closed form. message is passed to onCreated.
func NewCreateForm(fields []Field, submit SubmitFunc, message string, onCreated func(message string)) *CreateForm {
	return &CreateForm{
		fields:    fields,
		values:    make(map[string]string, len(fields)),
		submit:    submit,
		onCreated: onCreated,
		message:   message,
	}
}

func (f *CreateForm) Fields() []Field { return f.fields }

func (f *CreateForm) IsOpen() bool { return f.open }

// Err is the inline error shown inside the form.
func (f *CreateForm) Err() string { return f.errMsg }

// Open shows the form and clears any previous error.
func (f *CreateForm) Open() {
	f.open = true
	f.errMsg = ""
}

// Close hides the form. The draft is kept until a successful submit.
func (f *CreateForm) Close() {
	f.open = false
	f.errMsg = ""
}

// Set changes one field.
func (f *CreateForm) Set(name, value string) error {
	field, ok := f.field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if len(field.Choices) > 0 && strings.TrimSpace(value) != "" && !contains(field.Choices, value) {
		return fmt.Errorf("%q is not a valid %s", value, strings.ToLower(field.Label))
	}
	f.values[name] = value
	return nil
}

// Values returns a copy of the draft.
func (f *CreateForm) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Submit validates required fields and performs one insert.
func (f *CreateForm) Submit(ctx context.Context) error {
	for _, field := range f.fields {
		if field.Required && strings.TrimSpace(f.values[field.Name]) == "" {
			f.errMsg = ErrRequiredFields.Error()
			return ErrRequiredFields
		}
	}
	if err := f.submit(ctx, f.Values()); err != nil {
		f.errMsg = gateway.Message(err)
		return err
	}
	f.values = make(map[string]string, len(f.fields))
	f.errMsg = ""
	f.open = false
	if f.onCreated != nil {
		f.onCreated(f.message)
	}
	return nil
}

func (f *CreateForm) field(name string) (Field, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
