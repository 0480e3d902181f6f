package roulette

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/input"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/phase"
	historyRepo "github.com/KirkDiggler/spinwheel/internal/repositories/history"
	settingsRepo "github.com/KirkDiggler/spinwheel/internal/repositories/settings"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	scope        string
	settingsRepo settingsRepo.Repository
	historyRepo  historyRepo.Repository
	messaging    messaging.Service
	notifier     Notifier
	clock        clock.Clock
	timing       Timing
	maxOptions   int
	log          zerolog.Logger

	simulator  *wheel.Simulator
	lock       *wheel.SnapshotLock
	controller *phase.Controller

	mu          sync.Mutex
	closed      bool
	runCancel   context.CancelFunc
	options     []models.Option
	colors      []string
	autoDisable bool
	angle       float64
	frame       *wheel.Frame
}

// New creates a roulette service for one wheel
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
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
	if cfg.IDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	physics := wheel.StandardPhysics
	if cfg.Physics != nil {
		physics = *cfg.Physics
	}

	timing := DefaultTiming
	if cfg.Timing != nil {
		timing = *cfg.Timing
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	maxOptions := cfg.MaxOptions
	if maxOptions == 0 {
		maxOptions = DefaultMaxOptions
	}
	if maxOptions < 2 {
		return nil, ErrInvalidMaxOptions
	}

	log := cfg.Logger.With().Str("widget", "roulette").Str("scope", cfg.Scope).Logger()

	simulator, err := wheel.NewSimulator(&wheel.SimulatorConfig{
		Physics: physics,
		Random:  cfg.Random,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator: %w", err)
	}

	lock, err := wheel.NewSnapshotLock(&wheel.SnapshotLockConfig{
		IDGenerator: cfg.IDGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot lock: %w", err)
	}

	controller, err := phase.New(&phase.Config{
		Clock:  cfg.Clock,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create phase controller: %w", err)
	}

	return &service{
		scope:        cfg.Scope,
		settingsRepo: cfg.SettingsRepo,
		historyRepo:  cfg.HistoryRepo,
		messaging:    cfg.Messaging,
		notifier:     cfg.Notifier,
		clock:        cfg.Clock,
		timing:       timing,
		maxOptions:   maxOptions,
		log:          log,
		simulator:    simulator,
		lock:         lock,
		controller:   controller,
		options:      []models.Option{},
		colors:       []string{},
	}, nil
}

// Load reads the persisted options and the auto-disable flag
func (s *service) Load(ctx context.Context) error {
	stored, err := s.settingsRepo.Load(ctx, &settingsRepo.LoadInput{
		Scope: s.scope,
		Key:   settingsRepo.KeyRouletteOptions,
	})
	if err != nil {
		return fmt.Errorf("failed to load roulette options: %w", err)
	}

	flag, err := s.settingsRepo.Load(ctx, &settingsRepo.LoadInput{
		Scope: s.scope,
		Key:   settingsRepo.KeyAutoDisableEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to load auto-disable: %w", err)
	}

	options := decodeOptions(stored.Value)
	autoDisable, _ := strconv.ParseBool(flag.Value)

	s.mu.Lock()
	s.autoDisable = autoDisable
	s.mu.Unlock()

	s.applyOptions(options)
	return nil
}

// Spin validates the enabled options, then plays a spin through every
// phase: animate, settle, glow and finalize
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	if input == nil || input.Renderer == nil {
		return nil, ErrNilRenderer
	}

	if !s.controller.Idle() {
		s.log.Warn().Msg("spin requested while spinning")
		return nil, ErrAlreadySpinning
	}

	s.mu.Lock()
	enabled := models.EnabledOptions(s.options)
	s.mu.Unlock()

	if err := s.validate(len(enabled)); err != nil {
		s.notifyError(ctx, err, input.Target)
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	run := &spinRun{
		service:  s,
		renderer: input.Renderer,
		enabled:  enabled,
		cancel:   cancel,
		drawCtx:  context.WithoutCancel(ctx),
		out:      &SpinOutput{Index: -1},
	}

	started, err := s.controller.Run(runCtx, &phase.Plan{
		Name:          "spin",
		Run:           run.spin,
		Settle:        s.timing.SettleDelay,
		Reveal:        run.glow,
		CompleteDelay: s.timing.CompleteDelay,
		Finalize:      run.finalize,
	})
	if !started && err == nil {
		return nil, ErrAlreadySpinning
	}
	if err != nil {
		if kind := messaging.KindOf(err); kind != messaging.KindCanceled && kind != messaging.KindConcurrency {
			s.log.Error().Err(err).Msg("spin failed")
			s.notifyError(ctx, err, input.Target)
		}
		return run.out, err
	}

	return run.out, nil
}

func (s *service) validate(enabled int) error {
	if enabled < 2 {
		return ErrTooFewOptions
	}
	if enabled > s.maxOptions {
		return &messaging.LimitError{Err: ErrTooManyOptions, Limit: s.maxOptions, What: "enabled options"}
	}
	return nil
}

// spinRun carries the state of one spin between its phases
type spinRun struct {
	service  *service
	renderer Renderer
	enabled  []models.Option
	snapshot *wheel.Snapshot
	frame    *wheel.Frame
	out      *SpinOutput

	// cancel ends the run early, see Close
	cancel context.CancelFunc

	// drawCtx outlives the run for the final draw
	drawCtx context.Context
}

func (r *spinRun) spin(ctx context.Context) error {
	s := r.service

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return context.Canceled
	}
	s.runCancel = r.cancel
	s.mu.Unlock()

	snapshot, err := s.lock.Acquire(r.enabled)
	if err != nil {
		return err
	}
	r.snapshot = snapshot

	state, err := s.simulator.Launch()
	if err != nil {
		return err
	}

	options := snapshot.Options()
	r.frame = &wheel.Frame{
		Options:  options,
		Colors:   wheel.Colors(len(options)),
		Angle:    state.Angle,
		Spinning: true,
	}
	s.setFrame(r.frame)

	s.log.Debug().
		Str("snapshot", snapshot.ID()).
		Int("options", len(options)).
		Float64("velocity", state.AngularVelocity).
		Msg("spin launched")

	for {
		var done bool
		state, done = s.simulator.Step()
		r.frame = r.frame.WithAngle(state.Angle)
		s.setFrame(r.frame)
		s.draw(ctx, r.renderer, r.frame)
		if done {
			break
		}

		if err := s.clock.Sleep(ctx, s.timing.FrameInterval); err != nil {
			state, _ = s.simulator.Stop()
			if resolveErr := r.resolve(state.Angle); resolveErr != nil {
				s.log.Error().Err(resolveErr).Msg("failed to resolve stopped spin")
			}
			return err
		}
	}

	if err := r.resolve(state.Angle); err != nil {
		return err
	}

	r.record(ctx)
	return nil
}

func (r *spinRun) resolve(angle float64) error {
	r.out.Angle = angle

	index, err := wheel.Resolve(angle, r.snapshot.Options())
	if err != nil {
		return err
	}

	r.out.Index = index
	r.out.Result = r.snapshot.Options()[index].Text
	return nil
}

// record adds the result to the history and applies auto-disable
func (r *spinRun) record(ctx context.Context) {
	s := r.service
	now := s.clock.Now()
	angle := r.out.Angle

	r.out.Entry = &models.HistoryEntry{
		Result:    r.out.Result,
		Time:      now.Format("15:04:05"),
		Timestamp: now.UnixMilli(),
		Angle:     &angle,
	}

	if err := s.historyRepo.AddResult(ctx, &historyRepo.AddResultInput{
		Scope: s.scope,
		Entry: r.out.Entry,
	}); err != nil {
		s.log.Error().Err(err).Msg("failed to record spin result")
	}

	s.mu.Lock()
	autoDisable := s.autoDisable
	s.mu.Unlock()

	if autoDisable {
		disabled, err := s.disableResult(ctx, r.out.Result)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to auto-disable result")
		}
		r.out.Disabled = disabled
	}

	s.log.Info().Str("result", r.out.Result).Int("index", r.out.Index).Msg("spin resolved")
}

func (r *spinRun) glow(ctx context.Context) error {
	s := r.service
	if r.frame == nil || r.out.Index < 0 {
		return nil
	}

	steps := int(s.timing.GlowDuration / s.timing.FrameInterval)
	if steps < 1 {
		steps = 1
	}

	for i := 1; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		if err := r.renderer.DrawGlow(ctx, r.frame, r.out.Index, progress); err != nil {
			s.log.Debug().Err(err).Msg("glow draw failed")
		}
		if i == steps {
			break
		}
		if err := s.clock.Sleep(ctx, s.timing.FrameInterval); err != nil {
			return err
		}
	}

	return nil
}

// finalize releases the snapshot and draws the live wheel once, picking
// up any edit made during the spin
func (r *spinRun) finalize(err error) {
	s := r.service

	pending := false
	if r.snapshot != nil {
		var releaseErr error
		pending, releaseErr = s.lock.Release(r.snapshot.ID())
		if releaseErr != nil {
			s.log.Error().Err(releaseErr).Msg("failed to release snapshot")
		}
	}

	s.mu.Lock()
	if r.frame != nil {
		s.angle = r.frame.Angle
	}
	if pending {
		s.colors = wheel.Colors(len(models.EnabledOptions(s.options)))
	}
	s.frame = nil
	s.runCancel = nil
	s.mu.Unlock()

	s.draw(r.drawCtx, r.renderer, s.Frame())

	s.log.Debug().Bool("pending_edit", pending).AnErr("error", err).Msg("spin finished")
}

func (s *service) draw(ctx context.Context, renderer Renderer, frame *wheel.Frame) {
	if err := renderer.Draw(ctx, frame); err != nil {
		s.log.Debug().Err(err).Msg("draw failed")
	}
}

func (s *service) setFrame(frame *wheel.Frame) {
	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()
}

// Frame returns the in-flight frame, or the live wheel at rest
func (s *service) Frame() *wheel.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frame != nil {
		return s.frame
	}

	enabled := models.EnabledOptions(s.options)
	return &wheel.Frame{
		Options: enabled,
		Colors:  append([]string(nil), s.colors...),
		Angle:   s.angle,
	}
}

// UpdateOptions replaces the live options. Options that keep their text
// keep their enabled state.
func (s *service) UpdateOptions(ctx context.Context, in *UpdateOptionsInput) (*UpdateOptionsOutput, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	previous := s.options
	s.mu.Unlock()

	options := mergeOptions(previous, input.Lines(in.Text))
	if err := s.saveOptions(ctx, options); err != nil {
		return nil, err
	}

	deferred := s.applyOptions(options)
	return &UpdateOptionsOutput{
		Options:  options,
		Deferred: deferred,
	}, nil
}

// SetOptionEnabled toggles the option at index
func (s *service) SetOptionEnabled(ctx context.Context, in *SetOptionEnabledInput) (*SetOptionEnabledOutput, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	if in.Index < 0 || in.Index >= len(s.options) {
		s.mu.Unlock()
		return nil, ErrOptionIndex
	}
	options := append([]models.Option(nil), s.options...)
	s.mu.Unlock()

	options[in.Index].Enabled = in.Enabled
	if err := s.saveOptions(ctx, options); err != nil {
		return nil, err
	}

	deferred := s.applyOptions(options)
	return &SetOptionEnabledOutput{
		Options:  options,
		Deferred: deferred,
	}, nil
}

// disableResult switches off the first enabled live option with the
// result text
func (s *service) disableResult(ctx context.Context, result string) (bool, error) {
	s.mu.Lock()
	options := append([]models.Option(nil), s.options...)
	s.mu.Unlock()

	found := false
	for i := range options {
		if options[i].Enabled && options[i].Text == result {
			options[i].Enabled = false
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if err := s.saveOptions(ctx, options); err != nil {
		return false, err
	}
	s.applyOptions(options)
	return true, nil
}

// applyOptions swaps the live list. While a snapshot is locked the colors
// stay as they are and the edit is flagged for Release; it returns true
// in that case.
func (s *service) applyOptions(options []models.Option) bool {
	deferred := s.lock.MarkEdited()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.options = options
	if !deferred {
		s.colors = wheel.Colors(len(models.EnabledOptions(options)))
	}
	return deferred
}

func (s *service) saveOptions(ctx context.Context, options []models.Option) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	if err := s.settingsRepo.Save(ctx, &settingsRepo.SaveInput{
		Scope: s.scope,
		Key:   settingsRepo.KeyRouletteOptions,
		Value: string(data),
	}); err != nil {
		return fmt.Errorf("failed to save options: %w", err)
	}

	return nil
}

// GetOptions returns a copy of the live options
func (s *service) GetOptions(ctx context.Context) (*GetOptionsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	options := append([]models.Option(nil), s.options...)
	texts := make([]string, len(options))
	for i, option := range options {
		texts[i] = option.Text
	}

	return &GetOptionsOutput{
		Options:     options,
		Text:        input.Join(texts),
		AutoDisable: s.autoDisable,
	}, nil
}

// GetHistory returns the recorded results with per-result counts
func (s *service) GetHistory(ctx context.Context) (*GetHistoryOutput, error) {
	out, err := s.historyRepo.List(ctx, &historyRepo.ListInput{Scope: s.scope})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &GetHistoryOutput{
		Entries:    out.Entries,
		Statistics: models.HistoryStatistics(out.Entries),
	}, nil
}

// ClearHistory drops every recorded result
func (s *service) ClearHistory(ctx context.Context) error {
	if err := s.historyRepo.Clear(ctx, &historyRepo.ClearInput{Scope: s.scope}); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// RemoveLastResult rewrites the history without its newest entry
func (s *service) RemoveLastResult(ctx context.Context) (*RemoveLastResultOutput, error) {
	out, err := s.historyRepo.List(ctx, &historyRepo.ListInput{Scope: s.scope})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	if len(out.Entries) == 0 {
		return &RemoveLastResultOutput{}, nil
	}

	if err := s.historyRepo.Set(ctx, &historyRepo.SetInput{
		Scope:   s.scope,
		Entries: out.Entries[1:],
	}); err != nil {
		return nil, fmt.Errorf("failed to rewrite history: %w", err)
	}

	return &RemoveLastResultOutput{Entry: out.Entries[0]}, nil
}

// Reset clears every saved setting of the scope, the history and the
// live wheel. It is refused while a spin is in flight.
func (s *service) Reset(ctx context.Context) error {
	if !s.controller.Idle() {
		s.log.Warn().Msg("reset requested while spinning")
		return ErrAlreadySpinning
	}

	if err := s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{Scope: s.scope}); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	if err := s.historyRepo.Clear(ctx, &historyRepo.ClearInput{Scope: s.scope}); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	s.mu.Lock()
	s.autoDisable = false
	s.angle = 0
	s.mu.Unlock()

	s.applyOptions([]models.Option{})
	return nil
}

// SetAutoDisable stores the auto-disable flag
func (s *service) SetAutoDisable(ctx context.Context, in *SetAutoDisableInput) error {
	if in == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.settingsRepo.Save(ctx, &settingsRepo.SaveInput{
		Scope: s.scope,
		Key:   settingsRepo.KeyAutoDisableEnabled,
		Value: strconv.FormatBool(in.Enabled),
	}); err != nil {
		return fmt.Errorf("failed to save auto-disable: %w", err)
	}

	s.mu.Lock()
	s.autoDisable = in.Enabled
	s.mu.Unlock()
	return nil
}

// IsSpinning reports whether a spin is in flight
func (s *service) IsSpinning() bool {
	return !s.controller.Idle()
}

// Close cancels an in-flight spin; its finalization still runs. Later
// spins fail with context.Canceled.
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

// decodeOptions reads the stored option list: a JSON array of options, or
// plain text with one option per line
func decodeOptions(raw string) []models.Option {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []models.Option{}
	}

	var options []models.Option
	if strings.HasPrefix(raw, "[") && json.Unmarshal([]byte(raw), &options) == nil {
		kept := options[:0]
		for _, option := range options {
			option.Text = strings.TrimSpace(option.Text)
			if option.Text != "" {
				kept = append(kept, option)
			}
		}
		return kept
	}

	return models.OptionsFromLines(input.Lines(raw))
}

// mergeOptions builds options for lines, carrying the enabled state of
// previous options with the same text in order of appearance
func mergeOptions(previous []models.Option, lines []string) []models.Option {
	states := make(map[string][]bool)
	for _, option := range previous {
		states[option.Text] = append(states[option.Text], option.Enabled)
	}

	options := make([]models.Option, len(lines))
	for i, line := range lines {
		enabled := true
		if queue := states[line]; len(queue) > 0 {
			enabled = queue[0]
			states[line] = queue[1:]
		}
		options[i] = models.Option{Text: line, Enabled: enabled}
	}
	return options
}
