package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/spinwheel/internal/repositories/history Repository

import (
	"context"
)

// Repository keeps the most recent wheel results of each scope, newest
// first
type Repository interface {
	// AddResult prepends an entry and evicts entries past the limit
	AddResult(ctx context.Context, input *AddResultInput) error

	// List returns the entries, newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Clear removes every entry of a scope
	Clear(ctx context.Context, input *ClearInput) error

	// Set replaces the entries of a scope, trimming to the limit
	Set(ctx context.Context, input *SetInput) error
}
