package app

import (
	"errors"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

var (
	// ErrNotInitialized means a command ran without the root pre-run hook.
	ErrNotInitialized = errors.New("application not initialized")
	// ErrInvalidArgument wraps bad flag or argument values.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gateway.ErrNoRows)
}
