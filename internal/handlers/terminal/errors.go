package terminal

// TerminalError is a custom error type for terminal front end errors
type TerminalError string

// Error implements the error interface
func (e TerminalError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    TerminalError = "config cannot be nil"
	ErrNilScreen    TerminalError = "screen cannot be nil"
	ErrNilRoulette  TerminalError = "roulette service cannot be nil"
	ErrNilMessaging TerminalError = "messaging service cannot be nil"
	ErrNilStatus    TerminalError = "status line cannot be nil"
)
