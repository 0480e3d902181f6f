package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/spinwheel/internal/assign"
	"github.com/KirkDiggler/spinwheel/internal/phase"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
)

// Kinded is implemented by service errors that know their kind
type Kinded interface {
	error
	Kind() ErrorKind
}

// KindOf classifies err
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var kinded Kinded
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, wheel.ErrAlreadyRunning),
		errors.Is(err, wheel.ErrAlreadyLocked),
		errors.Is(err, assign.ErrAlreadyRevealing),
		errors.Is(err, phase.ErrBusy):
		return KindConcurrency
	case errors.Is(err, wheel.ErrNoOptions):
		return KindResolution
	case errors.Is(err, assign.ErrNoRoles), errors.Is(err, assign.ErrNoUsernames):
		return KindValidation
	}

	return KindUnknown
}

// IsValidation reports whether err is a user input problem
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsConcurrency reports whether err is a rejected overlapping request
func IsConcurrency(err error) bool {
	return KindOf(err) == KindConcurrency
}

// LimitError reports a count above a configured maximum
type LimitError struct {
	// Err is the sentinel the error wraps
	Err error

	// Limit is the maximum allowed
	Limit int

	// What names the counted items, plural
	What string
}

// Error implements the error interface
func (e *LimitError) Error() string {
	return fmt.Sprintf("you can have up to %d %s", e.Limit, e.What)
}

// Unwrap returns the sentinel
func (e *LimitError) Unwrap() error {
	return e.Err
}

// Kind implements Kinded
func (e *LimitError) Kind() ErrorKind {
	return KindValidation
}
