// Package phase drives the chained animation phases shared by both
// widgets: running, settling, reveal and completion, back to idle.
package phase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/rs/zerolog"
)

// Phase names one step of an animation run
type Phase string

const (
	// Idle accepts a new run
	Idle Phase = "idle"

	// Running is the spin or assignment computation
	Running Phase = "running"

	// Settling is the short pause between the result and its reveal
	Settling Phase = "settling"

	// Reveal plays the terminal visual effect (glow or sequential reveal)
	Reveal Phase = "reveal"

	// Complete runs finalization before returning to Idle
	Complete Phase = "complete"
)

// PhaseError is a custom error type for phase controller errors
type PhaseError string

// Error implements the error interface
func (e PhaseError) Error() string {
	return string(e)
}

const (
	ErrBusy      PhaseError = "an animation is already in progress"
	ErrPanicked  PhaseError = "animation phase panicked"
	ErrNilConfig PhaseError = "config cannot be nil"
	ErrNilClock  PhaseError = "clock cannot be nil"
	ErrNilPlan   PhaseError = "plan cannot be nil"
)

// Plan describes one run through the phases. Every hook is optional.
type Plan struct {
	// Name labels the run in logs
	Name string

	// Run executes during Running
	Run func(ctx context.Context) error

	// Settle is the pause spent in Settling
	Settle time.Duration

	// Reveal executes during Reveal
	Reveal func(ctx context.Context) error

	// CompleteDelay is waited after Reveal, before finalization
	CompleteDelay time.Duration

	// Finalize always runs exactly once in Complete, with the error that
	// ended the run (nil on success)
	Finalize func(err error)
}

// Config holds the controller dependencies
type Config struct {
	Clock clock.Clock

	// Logger is optional; a zero value logs nothing
	Logger zerolog.Logger

	// OnTransition is called after every phase change
	OnTransition func(from, to Phase)
}

// Controller runs plans one at a time
type Controller struct {
	mu           sync.Mutex
	phase        Phase
	clock        clock.Clock
	log          zerolog.Logger
	onTransition func(from, to Phase)
}

// New creates an idle controller
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &Controller{
		phase:        Idle,
		clock:        cfg.Clock,
		log:          cfg.Logger,
		onTransition: cfg.OnTransition,
	}, nil
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Idle reports whether a new run would be accepted
func (c *Controller) Idle() bool {
	return c.Phase() == Idle
}

// Run plays plan through every phase and blocks until the controller is
// idle again. When another run is in flight the call is a no-op: it logs a
// warning and returns started == false with a nil error.
func (c *Controller) Run(ctx context.Context, plan *Plan) (started bool, err error) {
	if plan == nil {
		return false, ErrNilPlan
	}
	if !c.begin() {
		c.log.Warn().Str("plan", plan.Name).Str("phase", string(c.Phase())).Msg("animation already in progress, ignoring request")
		return false, nil
	}
	started = true

	defer c.transition(Idle)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrPanicked, plan.Name, r)
		}
		c.transition(Complete)
		c.finalize(plan, err)
	}()

	if plan.Run != nil {
		if err := plan.Run(ctx); err != nil {
			return true, err
		}
	}

	c.transition(Settling)
	if err := c.clock.Sleep(ctx, plan.Settle); err != nil {
		return true, err
	}

	c.transition(Reveal)
	if plan.Reveal != nil {
		if err := plan.Reveal(ctx); err != nil {
			return true, err
		}
	}

	if err := c.clock.Sleep(ctx, plan.CompleteDelay); err != nil {
		return true, err
	}

	return true, nil
}

func (c *Controller) begin() bool {
	c.mu.Lock()
	if c.phase != Idle {
		c.mu.Unlock()
		return false
	}
	c.phase = Running
	c.mu.Unlock()

	c.notify(Idle, Running)
	return true
}

func (c *Controller) transition(to Phase) {
	c.mu.Lock()
	from := c.phase
	c.phase = to
	c.mu.Unlock()

	c.notify(from, to)
}

func (c *Controller) notify(from, to Phase) {
	c.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("phase transition")
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}

func (c *Controller) finalize(plan *Plan, runErr error) {
	if plan.Finalize == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Str("plan", plan.Name).Interface("panic", r).Msg("finalize panicked")
		}
	}()
	plan.Finalize(runErr)
}
