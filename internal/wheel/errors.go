package wheel

// WheelError is a custom error type for wheel engine errors
type WheelError string

// Error implements the error interface
func (e WheelError) Error() string {
	return string(e)
}

const (
	ErrAlreadyRunning  WheelError = "a spin is already running"
	ErrAlreadyLocked   WheelError = "options are already locked by another spin"
	ErrNotLocked       WheelError = "no snapshot is active"
	ErrUnknownSnapshot WheelError = "snapshot id does not match the active snapshot"
	ErrNoOptions       WheelError = "at least one option is required to resolve a spin"
	ErrNilConfig       WheelError = "config cannot be nil"
	ErrNilRandom       WheelError = "random source cannot be nil"
	ErrNilIDGenerator  WheelError = "id generator cannot be nil"
	ErrInvalidPhysics  WheelError = "invalid physics parameters"
)
