package assignment

import (
	"time"

	"github.com/KirkDiggler/spinwheel/internal/assign"
	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/random"
	assignmentRepo "github.com/KirkDiggler/spinwheel/internal/repositories/assignment"
	settingsRepo "github.com/KirkDiggler/spinwheel/internal/repositories/settings"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/rs/zerolog"
)

const (
	// DefaultMaxRoles caps the role list
	DefaultMaxRoles = 50

	// DefaultMaxUsernames caps the username list
	DefaultMaxUsernames = 50
)

// Timing holds the assignment delays
type Timing struct {
	SettleDelay   time.Duration
	CompleteDelay time.Duration
	ItemDelay     time.Duration
	GapDelay      time.Duration
}

// DefaultTiming matches the reveal pace of the wheel
var DefaultTiming = Timing{
	SettleDelay:   300 * time.Millisecond,
	CompleteDelay: 100 * time.Millisecond,
	ItemDelay:     assign.DefaultItemDelay,
	GapDelay:      assign.DefaultGapDelay,
}

// Config holds the service dependencies
type Config struct {
	// Scope keys the persisted state, e.g. a Discord channel ID
	Scope string

	SettingsRepo   settingsRepo.Repository
	AssignmentRepo assignmentRepo.Repository
	Messaging      messaging.Service

	// Notifier is optional; errors are only returned when nil
	Notifier Notifier

	Random random.Source
	Clock  clock.Clock

	// Timing defaults to DefaultTiming
	Timing *Timing

	// MaxRoles and MaxUsernames default to DefaultMaxRoles and
	// DefaultMaxUsernames
	MaxRoles     int
	MaxUsernames int

	// Logger is optional; a zero value logs nothing
	Logger zerolog.Logger
}

// AssignInput contains parameters for an assignment run
type AssignInput struct {
	// Roles and Usernames hold one entry per line
	Roles     string
	Usernames string

	// Presenter shows the entries as they are revealed
	Presenter assign.Presenter

	// Target routes notifications raised by the run
	Target string

	// Tone selects the completion message style
	Tone messaging.MessageTone
}

// AssignOutput contains the result of an assignment run
type AssignOutput struct {
	// Assignments are in role order
	Assignments []models.Assignment

	Statistics *models.AssignmentStatistics

	// Message summarises the run for the user
	Message string
}

// SaveInputsInput contains the editor text to persist
type SaveInputsInput struct {
	Roles     string
	Usernames string
}

// LoadInputsOutput contains the persisted editor text
type LoadInputsOutput struct {
	Roles     string
	Usernames string
}

// GetAssignmentsOutput contains the stored result
type GetAssignmentsOutput struct {
	Assignments []models.Assignment
	Statistics  *models.AssignmentStatistics
}
