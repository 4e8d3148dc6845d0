package gateway

import (
	"errors"
	"fmt"
)

// Error is a backend failure carrying a human-readable message.
// The fields mirror PostgREST error bodies.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend request failed with status %d", e.Status)
	}
	return e.Message
}

// Is matches errors with the same non-empty code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// ErrNoRows is returned when a single-row operation matched nothing.
var ErrNoRows = &Error{Status: 406, Code: "PGRST116", Message: "no rows matched"}

// NoRows builds an ErrNoRows variant naming the table and id.
func NoRows(table string, id any) error {
	return &Error{
		Status:  ErrNoRows.Status,
		Code:    ErrNoRows.Code,
		Message: fmt.Sprintf("no %s row with id %v", table, id),
	}
}

// Message extracts the text to show the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Error()
	}
	return err.Error()
}
