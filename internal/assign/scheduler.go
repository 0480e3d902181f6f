package assign

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/rs/zerolog"
)

const (
	// DefaultItemDelay is how long each revealed entry stays highlighted
	DefaultItemDelay = 800 * time.Millisecond

	// DefaultGapDelay separates one entry from the next
	DefaultGapDelay = 200 * time.Millisecond
)

//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/spinwheel/internal/assign Presenter

// Presenter shows assignment entries as they are revealed
type Presenter interface {
	// Reveal makes entry index visible
	Reveal(ctx context.Context, index int, assignment models.Assignment) error

	// Highlight toggles the highlight marker on entry index
	Highlight(ctx context.Context, index int, on bool) error
}

// SchedulerConfig holds the reveal timing and dependencies
type SchedulerConfig struct {
	Clock  clock.Clock
	Logger zerolog.Logger

	// ItemDelay defaults to DefaultItemDelay when zero
	ItemDelay time.Duration

	// GapDelay defaults to DefaultGapDelay when zero
	GapDelay time.Duration
}

// Scheduler plays reveals one at a time
type Scheduler struct {
	mu        sync.Mutex
	revealing bool

	clock     clock.Clock
	log       zerolog.Logger
	itemDelay time.Duration
	gapDelay  time.Duration
}

// NewScheduler creates a scheduler
func NewScheduler(cfg *SchedulerConfig) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &Scheduler{
		clock:     cfg.Clock,
		log:       cfg.Logger,
		itemDelay: cfg.ItemDelay,
		gapDelay:  cfg.GapDelay,
	}
	if s.itemDelay <= 0 {
		s.itemDelay = DefaultItemDelay
	}
	if s.gapDelay <= 0 {
		s.gapDelay = DefaultGapDelay
	}

	return s, nil
}

// Revealing reports whether a reveal is in progress
func (s *Scheduler) Revealing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealing
}

// Reveal shows each assignment in order: reveal, highlight, wait the item
// delay, unhighlight, then wait the gap delay unless it was the last entry.
// It returns ErrAlreadyRevealing without touching the presenter when a
// reveal is already running. A cancelled ctx ends the sequence early.
func (s *Scheduler) Reveal(ctx context.Context, assignments []models.Assignment, presenter Presenter) error {
	if presenter == nil {
		return ErrNilPresenter
	}

	s.mu.Lock()
	if s.revealing {
		s.mu.Unlock()
		return ErrAlreadyRevealing
	}
	s.revealing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.revealing = false
		s.mu.Unlock()
	}()

	for i, a := range assignments {
		if err := presenter.Reveal(ctx, i, a); err != nil {
			return err
		}
		if err := presenter.Highlight(ctx, i, true); err != nil {
			return err
		}

		if err := s.clock.Sleep(ctx, s.itemDelay); err != nil {
			return err
		}

		if err := presenter.Highlight(ctx, i, false); err != nil {
			return err
		}

		if i == len(assignments)-1 {
			break
		}
		if err := s.clock.Sleep(ctx, s.gapDelay); err != nil {
			return err
		}
	}

	s.log.Debug().Int("count", len(assignments)).Msg("reveal finished")
	return nil
}
