package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/assign"
	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/input"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/phase"
	"github.com/KirkDiggler/spinwheel/internal/random"
	assignmentRepo "github.com/KirkDiggler/spinwheel/internal/repositories/assignment"
	settingsRepo "github.com/KirkDiggler/spinwheel/internal/repositories/settings"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	scope          string
	settingsRepo   settingsRepo.Repository
	assignmentRepo assignmentRepo.Repository
	messaging      messaging.Service
	notifier       Notifier
	random         random.Source
	clock          clock.Clock
	timing         Timing
	maxRoles       int
	maxUsernames   int
	log            zerolog.Logger

	scheduler  *assign.Scheduler
	controller *phase.Controller

	mu        sync.Mutex
	closed    bool
	runCancel context.CancelFunc
}

// New creates an assignment service for one scope
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.AssignmentRepo == nil {
		return nil, ErrNilAssignmentRepo
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	timing := DefaultTiming
	if cfg.Timing != nil {
		timing = *cfg.Timing
	}

	maxRoles := cfg.MaxRoles
	if maxRoles == 0 {
		maxRoles = DefaultMaxRoles
	}
	maxUsernames := cfg.MaxUsernames
	if maxUsernames == 0 {
		maxUsernames = DefaultMaxUsernames
	}
	if maxRoles < 1 || maxUsernames < 1 {
		return nil, ErrInvalidLimit
	}

	log := cfg.Logger.With().Str("widget", "assignment").Str("scope", cfg.Scope).Logger()

	scheduler, err := assign.NewScheduler(&assign.SchedulerConfig{
		Clock:     cfg.Clock,
		Logger:    log,
		ItemDelay: timing.ItemDelay,
		GapDelay:  timing.GapDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reveal scheduler: %w", err)
	}

	controller, err := phase.New(&phase.Config{
		Clock:  cfg.Clock,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create phase controller: %w", err)
	}

	return &service{
		scope:          cfg.Scope,
		settingsRepo:   cfg.SettingsRepo,
		assignmentRepo: cfg.AssignmentRepo,
		messaging:      cfg.Messaging,
		notifier:       cfg.Notifier,
		random:         cfg.Random,
		clock:          cfg.Clock,
		timing:         timing,
		maxRoles:       maxRoles,
		maxUsernames:   maxUsernames,
		log:            log,
		scheduler:      scheduler,
		controller:     controller,
	}, nil
}

// Assign validates both lists, then plays an assignment through every
// phase: draw, settle, reveal and finalize
func (s *service) Assign(ctx context.Context, in *AssignInput) (*AssignOutput, error) {
	if in == nil || in.Presenter == nil {
		return nil, ErrNilPresenter
	}

	if !s.controller.Idle() {
		s.log.Warn().Msg("assignment requested while processing")
		return nil, ErrAlreadyProcessing
	}

	roles := input.Lines(in.Roles)
	usernames := input.Lines(in.Usernames)

	if err := s.validate(roles, usernames); err != nil {
		s.notifyError(ctx, err, in.Target)
		return nil, err
	}

	if err := s.SaveInputs(ctx, &SaveInputsInput{
		Roles:     input.Join(roles),
		Usernames: input.Join(usernames),
	}); err != nil {
		s.log.Error().Err(err).Msg("failed to save assignment inputs")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	run := &assignRun{
		service:   s,
		presenter: in.Presenter,
		roles:     roles,
		usernames: usernames,
		cancel:    cancel,
	}

	started, err := s.controller.Run(runCtx, &phase.Plan{
		Name:          "assignment",
		Run:           run.draw,
		Settle:        s.timing.SettleDelay,
		Reveal:        run.reveal,
		CompleteDelay: s.timing.CompleteDelay,
		Finalize:      run.finalize,
	})
	if !started && err == nil {
		return nil, ErrAlreadyProcessing
	}
	if err != nil {
		if kind := messaging.KindOf(err); kind != messaging.KindCanceled && kind != messaging.KindConcurrency {
			s.log.Error().Err(err).Msg("assignment failed")
			s.notifyError(ctx, err, in.Target)
		}
		return nil, err
	}

	stats := models.NewAssignmentStatistics(roles, usernames, run.assignments)
	out := &AssignOutput{
		Assignments: run.assignments,
		Statistics:  stats,
	}

	msg, err := s.messaging.GetAssignmentCompleteMessage(ctx, &messaging.GetAssignmentCompleteMessageInput{
		Statistics: stats,
		Tone:       in.Tone,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build completion message")
	} else {
		out.Message = msg.Message
	}

	return out, nil
}

func (s *service) validate(roles, usernames []string) error {
	switch {
	case len(roles) == 0:
		return ErrNoRoles
	case len(usernames) == 0:
		return ErrNoUsernames
	case len(roles) > s.maxRoles:
		return &messaging.LimitError{Err: ErrTooManyRoles, Limit: s.maxRoles, What: "roles"}
	case len(usernames) > s.maxUsernames:
		return &messaging.LimitError{Err: ErrTooManyUsernames, Limit: s.maxUsernames, What: "usernames"}
	}

	if dups := input.Duplicates(roles); len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRoles, strings.Join(dups, ", "))
	}
	if dups := input.Duplicates(usernames); len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateUsernames, strings.Join(dups, ", "))
	}

	return nil
}

// assignRun carries the state of one assignment between its phases
type assignRun struct {
	service     *service
	presenter   assign.Presenter
	roles       []string
	usernames   []string
	assignments []models.Assignment

	// cancel ends the run early, see Close
	cancel context.CancelFunc
}

func (r *assignRun) draw(ctx context.Context) error {
	s := r.service

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return context.Canceled
	}
	s.runCancel = r.cancel
	s.mu.Unlock()

	assignments, err := assign.Assign(s.random, r.roles, r.usernames)
	if err != nil {
		return err
	}
	r.assignments = assignments

	if err := s.assignmentRepo.Save(ctx, &assignmentRepo.SaveInput{
		Scope:       s.scope,
		Assignments: assignments,
	}); err != nil {
		s.log.Error().Err(err).Msg("failed to store assignment")
	}

	s.log.Info().
		Int("roles", len(r.roles)).
		Int("usernames", len(r.usernames)).
		Msg("assignment drawn")
	return nil
}

func (r *assignRun) reveal(ctx context.Context) error {
	return r.service.scheduler.Reveal(ctx, r.assignments, r.presenter)
}

func (r *assignRun) finalize(err error) {
	s := r.service

	s.mu.Lock()
	s.runCancel = nil
	s.mu.Unlock()

	s.log.Debug().Int("assignments", len(r.assignments)).AnErr("error", err).Msg("assignment finished")
}

// SaveInputs stores the editor text of both lists
func (s *service) SaveInputs(ctx context.Context, in *SaveInputsInput) error {
	if in == nil {
		return errors.New("input cannot be nil")
	}

	values := []struct {
		key   string
		value string
	}{
		{settingsRepo.KeyRoleAssignmentRoles, in.Roles},
		{settingsRepo.KeyRoleAssignmentUsernames, in.Usernames},
	}

	for _, v := range values {
		// an emptied field leaves nothing behind in the store
		if v.value == "" {
			if err := s.settingsRepo.Delete(ctx, &settingsRepo.DeleteInput{
				Scope: s.scope,
				Key:   v.key,
			}); err != nil {
				return fmt.Errorf("failed to delete %s: %w", v.key, err)
			}
			continue
		}

		if err := s.settingsRepo.Save(ctx, &settingsRepo.SaveInput{
			Scope: s.scope,
			Key:   v.key,
			Value: v.value,
		}); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}

	return nil
}

// LoadInputs returns the stored editor text; missing lists are empty
func (s *service) LoadInputs(ctx context.Context) (*LoadInputsOutput, error) {
	out, err := s.settingsRepo.LoadAll(ctx, &settingsRepo.LoadAllInput{Scope: s.scope})
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment inputs: %w", err)
	}

	return &LoadInputsOutput{
		Roles:     out.Values[settingsRepo.KeyRoleAssignmentRoles],
		Usernames: out.Values[settingsRepo.KeyRoleAssignmentUsernames],
	}, nil
}

// GetAssignments returns the stored result with statistics over the
// stored inputs
func (s *service) GetAssignments(ctx context.Context) (*GetAssignmentsOutput, error) {
	out, err := s.assignmentRepo.Get(ctx, &assignmentRepo.GetInput{Scope: s.scope})
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	inputs, err := s.LoadInputs(ctx)
	if err != nil {
		return nil, err
	}

	return &GetAssignmentsOutput{
		Assignments: out.Assignments,
		Statistics: models.NewAssignmentStatistics(
			input.Lines(inputs.Roles),
			input.Lines(inputs.Usernames),
			out.Assignments,
		),
	}, nil
}

// ClearResults drops the stored result; the inputs are kept
func (s *service) ClearResults(ctx context.Context) error {
	if err := s.assignmentRepo.Clear(ctx, &assignmentRepo.ClearInput{Scope: s.scope}); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	return nil
}

// IsProcessing reports whether an assignment is in flight
func (s *service) IsProcessing() bool {
	return !s.controller.Idle()
}

// Close cancels an in-flight assignment; its finalization still runs.
// Later runs fail with context.Canceled.
func (s *service) Close() {
	s.mu.Lock()
	s.closed = true
	cancel := s.runCancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (s *service) notifyError(ctx context.Context, err error, target string) {
	if s.notifier == nil {
		return
	}

	out, msgErr := s.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		s.log.Error().Err(msgErr).Msg("failed to build error message")
		return
	}
	if out.Silent {
		return
	}

	s.notifier.Show(models.Notification{
		Message: out.Message,
		Target:  target,
	})
}
