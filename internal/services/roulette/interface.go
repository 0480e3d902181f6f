package roulette

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/spinwheel/internal/services/roulette Service,Renderer,Notifier

import (
	"context"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
)

// Service drives one wheel: its option list, spins and history
type Service interface {
	// Load reads the persisted options and flags of the scope
	Load(ctx context.Context) error

	// Spin runs a whole spin, blocking until the wheel is idle again.
	// A spin requested while another is in flight returns
	// ErrAlreadySpinning and leaves the running spin untouched.
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// UpdateOptions replaces the option list from editor text
	UpdateOptions(ctx context.Context, input *UpdateOptionsInput) (*UpdateOptionsOutput, error)

	// SetOptionEnabled toggles a single option
	SetOptionEnabled(ctx context.Context, input *SetOptionEnabledInput) (*SetOptionEnabledOutput, error)

	// GetOptions returns the live option list
	GetOptions(ctx context.Context) (*GetOptionsOutput, error)

	// GetHistory returns recent results, newest first
	GetHistory(ctx context.Context) (*GetHistoryOutput, error)

	// ClearHistory drops every recorded result
	ClearHistory(ctx context.Context) error

	// RemoveLastResult drops the newest history entry
	RemoveLastResult(ctx context.Context) (*RemoveLastResultOutput, error)

	// Reset forgets every saved setting of the scope and its history
	Reset(ctx context.Context) error

	// SetAutoDisable toggles disabling the winning option after a spin
	SetAutoDisable(ctx context.Context, input *SetAutoDisableInput) error

	// Frame returns what the wheel shows right now
	Frame() *wheel.Frame

	// IsSpinning reports whether a spin is in flight
	IsSpinning() bool

	// Close cancels an in-flight spin
	Close()
}

// Renderer draws wheel frames. Draw is called once per animation step
// and once more when a spin finishes; a failed draw is logged and the
// animation carries on.
type Renderer interface {
	// Draw renders the wheel at frame.Angle
	Draw(ctx context.Context, frame *wheel.Frame) error

	// DrawGlow overlays the highlight on the selected segment; progress
	// runs from 0 to 1 over the glow phase
	DrawGlow(ctx context.Context, frame *wheel.Frame, selected int, progress float64) error
}

// Notifier shows transient messages
type Notifier interface {
	Show(n models.Notification)
}
