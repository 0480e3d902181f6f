package assignment

import "github.com/KirkDiggler/spinwheel/internal/services/messaging"

// AssignmentError is a custom error type for assignment service errors
type AssignmentError string

// Error implements the error interface
func (e AssignmentError) Error() string {
	return string(e)
}

// Kind implements messaging.Kinded
func (e AssignmentError) Kind() messaging.ErrorKind {
	switch e {
	case ErrNoRoles, ErrNoUsernames, ErrTooManyRoles, ErrTooManyUsernames,
		ErrDuplicateRoles, ErrDuplicateUsernames:
		return messaging.KindValidation
	case ErrAlreadyProcessing:
		return messaging.KindConcurrency
	}
	return messaging.KindUnknown
}

// Define errors
const (
	ErrNoRoles            AssignmentError = "please enter at least one role"
	ErrNoUsernames        AssignmentError = "please enter at least one username"
	ErrTooManyRoles       AssignmentError = "too many roles"
	ErrTooManyUsernames   AssignmentError = "too many usernames"
	ErrDuplicateRoles     AssignmentError = "roles must be unique"
	ErrDuplicateUsernames AssignmentError = "usernames must be unique"
	ErrAlreadyProcessing  AssignmentError = "an assignment is already in progress"
	ErrNilConfig          AssignmentError = "config cannot be nil"
	ErrNilSettingsRepo    AssignmentError = "settings repository cannot be nil"
	ErrNilAssignmentRepo  AssignmentError = "assignment repository cannot be nil"
	ErrNilMessaging       AssignmentError = "messaging service cannot be nil"
	ErrNilRandom          AssignmentError = "random source cannot be nil"
	ErrNilClock           AssignmentError = "clock cannot be nil"
	ErrNilPresenter       AssignmentError = "presenter cannot be nil"
	ErrInvalidLimit       AssignmentError = "role and username limits must be at least 1"
)
