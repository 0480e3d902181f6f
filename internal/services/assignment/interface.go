package assignment

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/spinwheel/internal/services/assignment Service,Notifier

import (
	"context"

	"github.com/KirkDiggler/spinwheel/internal/models"
)

// Service draws a username for every role and reveals the result one
// entry at a time
type Service interface {
	// Assign validates the inputs, draws the assignment and plays the
	// reveal, blocking until the widget is idle again. A request made
	// while another is in flight returns ErrAlreadyProcessing.
	Assign(ctx context.Context, input *AssignInput) (*AssignOutput, error)

	// SaveInputs persists the editor text of both lists
	SaveInputs(ctx context.Context, input *SaveInputsInput) error

	// LoadInputs returns the persisted editor text
	LoadInputs(ctx context.Context) (*LoadInputsOutput, error)

	// GetAssignments returns the last stored result
	GetAssignments(ctx context.Context) (*GetAssignmentsOutput, error)

	// ClearResults drops the stored result
	ClearResults(ctx context.Context) error

	// IsProcessing reports whether an assignment is in flight
	IsProcessing() bool

	// Close cancels an in-flight assignment
	Close()
}

// Notifier shows transient messages
type Notifier interface {
	Show(n models.Notification)
}
