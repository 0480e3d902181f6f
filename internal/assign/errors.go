package assign

// AssignError is a custom error type for assignment errors
type AssignError string

// Error implements the error interface
func (e AssignError) Error() string {
	return string(e)
}

const (
	ErrAlreadyRevealing AssignError = "a reveal is already in progress"
	ErrNoRoles          AssignError = "at least one role is required"
	ErrNoUsernames      AssignError = "at least one username is required"
	ErrNilConfig        AssignError = "config cannot be nil"
	ErrNilClock         AssignError = "clock cannot be nil"
	ErrNilPresenter     AssignError = "presenter cannot be nil"
)
