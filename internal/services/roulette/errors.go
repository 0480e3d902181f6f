package roulette

import "github.com/KirkDiggler/spinwheel/internal/services/messaging"

// RouletteError is a custom error type for roulette errors
type RouletteError string

// Error implements the error interface
func (e RouletteError) Error() string {
	return string(e)
}

// Kind implements messaging.Kinded
func (e RouletteError) Kind() messaging.ErrorKind {
	switch e {
	case ErrTooFewOptions, ErrTooManyOptions, ErrOptionIndex:
		return messaging.KindValidation
	case ErrAlreadySpinning:
		return messaging.KindConcurrency
	}
	return messaging.KindUnknown
}

// Define errors
const (
	ErrTooFewOptions     RouletteError = "please enable at least 2 options"
	ErrTooManyOptions    RouletteError = "too many enabled options"
	ErrOptionIndex       RouletteError = "no option at that position"
	ErrAlreadySpinning   RouletteError = "the wheel is already spinning"
	ErrNilConfig         RouletteError = "config cannot be nil"
	ErrNilSettingsRepo   RouletteError = "settings repository cannot be nil"
	ErrNilHistoryRepo    RouletteError = "history repository cannot be nil"
	ErrNilMessaging      RouletteError = "messaging service cannot be nil"
	ErrNilRandom         RouletteError = "random source cannot be nil"
	ErrNilClock          RouletteError = "clock cannot be nil"
	ErrNilUUIDGenerator  RouletteError = "UUID generator cannot be nil"
	ErrNilRenderer       RouletteError = "renderer cannot be nil"
	ErrInvalidMaxOptions RouletteError = "max options must be at least 2"
	ErrInvalidTiming     RouletteError = "frame interval and glow duration must be positive"
)
