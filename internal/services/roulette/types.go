package roulette

import (
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/common/uuid"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/random"
	historyRepo "github.com/KirkDiggler/spinwheel/internal/repositories/history"
	settingsRepo "github.com/KirkDiggler/spinwheel/internal/repositories/settings"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/rs/zerolog"
)

// DefaultMaxOptions caps the enabled options of a wheel
const DefaultMaxOptions = 100

// Timing holds the spin delays
type Timing struct {
	FrameInterval time.Duration
	SettleDelay   time.Duration
	GlowDuration  time.Duration
	CompleteDelay time.Duration
}

// Validate checks the delays a spin can run with. The frame interval
// and glow duration must be positive; the pauses may be zero.
func (t *Timing) Validate() error {
	if t.FrameInterval <= 0 || t.GlowDuration <= 0 || t.SettleDelay < 0 || t.CompleteDelay < 0 {
		return ErrInvalidTiming
	}
	return nil
}

// DefaultTiming paces a spin at roughly 60 frames per second
var DefaultTiming = Timing{
	FrameInterval: 16 * time.Millisecond,
	SettleDelay:   300 * time.Millisecond,
	GlowDuration:  600 * time.Millisecond,
	CompleteDelay: 100 * time.Millisecond,
}

// Config holds the service dependencies
type Config struct {
	// Scope keys the persisted state, e.g. a Discord channel ID
	Scope string

	SettingsRepo settingsRepo.Repository
	HistoryRepo  historyRepo.Repository
	Messaging    messaging.Service

	// Notifier is optional; errors are only returned when nil
	Notifier Notifier

	Random      random.Source
	Clock       clock.Clock
	IDGenerator uuid.Generator

	// Physics defaults to wheel.StandardPhysics
	Physics *wheel.Physics

	// Timing defaults to DefaultTiming
	Timing *Timing

	// MaxOptions defaults to DefaultMaxOptions
	MaxOptions int

	// Logger is optional; a zero value logs nothing
	Logger zerolog.Logger
}

// SpinInput contains parameters for a spin
type SpinInput struct {
	// Renderer receives every frame of this spin
	Renderer Renderer

	// Target routes notifications raised by the spin
	Target string
}

// SpinOutput contains the result of a spin
type SpinOutput struct {
	// Result is the text of the selected option
	Result string

	// Index is the selected segment in the locked snapshot
	Index int

	// Angle is the final wheel angle
	Angle float64

	// Entry is the recorded history entry; nil when the spin was stopped
	Entry *models.HistoryEntry

	// Disabled is true when auto-disable switched the result off
	Disabled bool
}

// UpdateOptionsInput contains parameters for replacing the options
type UpdateOptionsInput struct {
	// Text holds one option per line
	Text string
}

// UpdateOptionsOutput contains the new option list
type UpdateOptionsOutput struct {
	Options []models.Option

	// Deferred is true when the change arrived mid-spin; the wheel picks
	// it up once the spin finishes
	Deferred bool
}

// SetOptionEnabledInput contains parameters for toggling an option
type SetOptionEnabledInput struct {
	Index   int
	Enabled bool
}

// SetOptionEnabledOutput contains the new option list
type SetOptionEnabledOutput struct {
	Options  []models.Option
	Deferred bool
}

// GetOptionsOutput contains the live option list
type GetOptionsOutput struct {
	Options []models.Option

	// Text is the editor text for the options
	Text string

	AutoDisable bool
}

// GetHistoryOutput contains the recent results
type GetHistoryOutput struct {
	Entries []*models.HistoryEntry

	// Statistics counts each result text
	Statistics map[string]int
}

// RemoveLastResultOutput contains the dropped entry
type RemoveLastResultOutput struct {
	// Entry is nil when the history was already empty
	Entry *models.HistoryEntry
}

// SetAutoDisableInput contains parameters for the auto-disable flag
type SetAutoDisableInput struct {
	Enabled bool
}
