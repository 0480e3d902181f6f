package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/services/assignment"
	"github.com/KirkDiggler/spinwheel/internal/services/roulette"
)

// RegistryConfig holds the per-channel service factories
type RegistryConfig struct {
	// NewRoulette builds the wheel of a channel
	NewRoulette func(channelID string) (roulette.Service, error)

	// NewAssignment builds the assignment widget of a channel
	NewAssignment func(channelID string) (assignment.Service, error)
}

// Registry hands out one wheel and one assignment widget per channel,
// creating them on first use
type Registry struct {
	newRoulette   func(channelID string) (roulette.Service, error)
	newAssignment func(channelID string) (assignment.Service, error)

	mu          sync.Mutex
	roulettes   map[string]roulette.Service
	assignments map[string]assignment.Service
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.NewRoulette == nil {
		return nil, ErrNilRouletteFactory
	}
	if cfg.NewAssignment == nil {
		return nil, ErrNilAssignmentFactory
	}

	return &Registry{
		newRoulette:   cfg.NewRoulette,
		newAssignment: cfg.NewAssignment,
		roulettes:     make(map[string]roulette.Service),
		assignments:   make(map[string]assignment.Service),
	}, nil
}

// Roulette returns the channel's wheel, loading its options on first use
func (r *Registry) Roulette(ctx context.Context, channelID string) (roulette.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if svc, ok := r.roulettes[channelID]; ok {
		return svc, nil
	}

	svc, err := r.newRoulette(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create roulette for channel %s: %w", channelID, err)
	}
	if err := svc.Load(ctx); err != nil {
		svc.Close()
		return nil, err
	}

	r.roulettes[channelID] = svc
	return svc, nil
}

// Assignment returns the channel's assignment widget
func (r *Registry) Assignment(channelID string) (assignment.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if svc, ok := r.assignments[channelID]; ok {
		return svc, nil
	}

	svc, err := r.newAssignment(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment for channel %s: %w", channelID, err)
	}

	r.assignments[channelID] = svc
	return svc, nil
}

// Close cancels every in-flight animation
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, svc := range r.roulettes {
		svc.Close()
	}
	for _, svc := range r.assignments {
		svc.Close()
	}
}
