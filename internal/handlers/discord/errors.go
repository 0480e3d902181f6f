package discord

// DiscordError is a custom error type for Discord handler errors
type DiscordError string

// Error implements the error interface
func (e DiscordError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            DiscordError = "config cannot be nil"
	ErrNilSession           DiscordError = "session cannot be nil"
	ErrNilMessenger         DiscordError = "messenger cannot be nil"
	ErrNilRegistry          DiscordError = "registry cannot be nil"
	ErrNilMessaging         DiscordError = "messaging service cannot be nil"
	ErrNilClock             DiscordError = "clock cannot be nil"
	ErrNilRouletteFactory   DiscordError = "roulette factory cannot be nil"
	ErrNilAssignmentFactory DiscordError = "assignment factory cannot be nil"
	ErrUnknownSubcommand    DiscordError = "unknown subcommand"
)
