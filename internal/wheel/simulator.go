package wheel

import (
	"math"
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/random"
)

// FullTurn is one revolution in radians
const FullTurn = 2 * math.Pi

// DefaultStopThreshold is the angular velocity at or below which a spin ends
const DefaultStopThreshold = 0.002

const (
	standardMinVelocity = 0.09
	standardFriction    = 0.992
	fastMinVelocity     = 0.3
	fastFriction        = 0.98

	// The launch range spans velocityTurns full revolutions of final
	// angle so every segment is reached by the same share of launches.
	velocityTurns = 2
)

// Physics holds the tunables of one wheel variant
type Physics struct {
	// MinVelocity and MaxVelocity bound the launch velocity in rad/step
	MinVelocity float64
	MaxVelocity float64

	// Friction multiplies the velocity after every step, in (0, 1)
	Friction float64

	// StopThreshold ends the spin once velocity drops to or below it
	StopThreshold float64
}

// StandardPhysics is the regular wheel
var StandardPhysics = Physics{
	MinVelocity:   standardMinVelocity,
	MaxVelocity:   standardMinVelocity + velocityTurns*FullTurn*(1-standardFriction),
	Friction:      standardFriction,
	StopThreshold: DefaultStopThreshold,
}

// FastPhysics launches harder and stops sooner
var FastPhysics = Physics{
	MinVelocity:   fastMinVelocity,
	MaxVelocity:   fastMinVelocity + velocityTurns*FullTurn*(1-fastFriction),
	Friction:      fastFriction,
	StopThreshold: DefaultStopThreshold,
}

// PhysicsFor maps a variant name to its physics; unknown names get the
// standard wheel
func PhysicsFor(variant string) Physics {
	if variant == "fast" {
		return FastPhysics
	}
	return StandardPhysics
}

// Validate checks the physics can produce a finite, running spin
func (p Physics) Validate() error {
	switch {
	case p.Friction <= 0 || p.Friction >= 1:
		return ErrInvalidPhysics
	case p.StopThreshold <= 0:
		return ErrInvalidPhysics
	case p.MinVelocity <= p.StopThreshold || p.MaxVelocity < p.MinVelocity:
		return ErrInvalidPhysics
	}
	return nil
}

// SpinState is the simulation state of one run
type SpinState struct {
	// Angle accumulates across the run, in radians
	Angle float64

	// AngularVelocity is in radians per step
	AngularVelocity float64

	// Running is true iff AngularVelocity > StopThreshold
	Running bool
}

// SimulatorConfig holds the simulator dependencies
type SimulatorConfig struct {
	Physics Physics
	Random  random.Source
}

// Simulator integrates the wheel angle under decaying angular velocity.
// At most one run is active at a time.
type Simulator struct {
	mu      sync.Mutex
	physics Physics
	random  random.Source
	state   SpinState
}

// NewSimulator creates a simulator for the given physics
func NewSimulator(cfg *SimulatorConfig) (*Simulator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if err := cfg.Physics.Validate(); err != nil {
		return nil, err
	}

	return &Simulator{
		physics: cfg.Physics,
		random:  cfg.Random,
	}, nil
}

// Launch starts a new run from angle 0 with a uniform random velocity
func (s *Simulator) Launch() (SpinState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Running {
		return s.state, ErrAlreadyRunning
	}

	velocity := random.Uniform(s.random, s.physics.MinVelocity, s.physics.MaxVelocity)
	s.state = SpinState{
		Angle:           0,
		AngularVelocity: velocity,
		Running:         velocity > s.physics.StopThreshold,
	}

	return s.state, nil
}

// Step advances the run by one frame. The returned bool is true only on
// the step that completes the run; afterwards Step is a no-op returning
// false until the next Launch.
func (s *Simulator) Step() (SpinState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Running {
		return s.state, false
	}

	s.state.Angle += s.state.AngularVelocity
	s.state.AngularVelocity *= s.physics.Friction

	if s.state.AngularVelocity <= s.physics.StopThreshold {
		s.state.AngularVelocity = 0
		s.state.Running = false
		return s.state, true
	}

	return s.state, false
}

// Stop forces the active run to complete at its current angle. The bool
// reports whether a run was actually stopped.
func (s *Simulator) Stop() (SpinState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Running {
		return s.state, false
	}

	s.state.AngularVelocity = 0
	s.state.Running = false
	return s.state, true
}

// State returns a copy of the current state
func (s *Simulator) State() SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Simulate runs a whole spin without rendering and returns the final state.
// It is the same integration the animated path performs frame by frame.
func (s *Simulator) Simulate() (SpinState, error) {
	if _, err := s.Launch(); err != nil {
		return SpinState{}, err
	}
	for {
		state, done := s.Step()
		if done {
			return state, nil
		}
	}
}
