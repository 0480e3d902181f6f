package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/spinwheel/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns the user facing text for an error; Silent is
	// true when nothing should be shown
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetSpinResultMessage announces a wheel result
	GetSpinResultMessage(ctx context.Context, input *GetSpinResultMessageInput) (*GetSpinResultMessageOutput, error)

	// GetAssignmentCompleteMessage summarises a finished assignment
	GetAssignmentCompleteMessage(ctx context.Context, input *GetAssignmentCompleteMessageInput) (*GetAssignmentCompleteMessageOutput, error)
}
