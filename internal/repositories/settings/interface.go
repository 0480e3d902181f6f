package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/spinwheel/internal/repositories/settings Repository

import (
	"context"
)

// Repository is a key to string store for widget inputs and flags. Values
// are grouped per scope (a Discord channel, or the terminal session).
type Repository interface {
	// Save stores value under key
	Save(ctx context.Context, input *SaveInput) error

	// Load returns the value stored under key; Found is false when absent
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Delete removes a single key
	Delete(ctx context.Context, input *DeleteInput) error

	// Clear removes every key of a scope
	Clear(ctx context.Context, input *ClearInput) error

	// LoadAll returns every key of a scope
	LoadAll(ctx context.Context, input *LoadAllInput) (*LoadAllOutput, error)
}
