package view

import "errors"

var (
	// ErrRequiredFields rejects a form submit with a blank required field.
	ErrRequiredFields = errors.New("All fields are required")
	// ErrTransition is returned for an action the current phase does not allow.
	ErrTransition = errors.New("action not allowed in current state")
	// ErrNotEditable is returned by Edit on read-only records.
	ErrNotEditable = errors.New("record is read-only")
	// ErrNoToggle is returned by Toggle on lists without a status flag.
	ErrNoToggle = errors.New("list has no toggle")
	// ErrNotLoaded is returned when acting on a row that is not on the current page.
	ErrNotLoaded = errors.New("row is not loaded")
)
