package assignment

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/spinwheel/internal/repositories/assignment Repository

import (
	"context"
)

// Repository keeps the latest assignment result of each scope
type Repository interface {
	// Save replaces the stored result
	Save(ctx context.Context, input *SaveInput) error

	// Get returns the stored result, empty when there is none
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Clear removes the stored result
	Clear(ctx context.Context, input *ClearInput) error
}
