// Package terminal is the tcell front end: the wheel drawn in cells, the
// option list and an input line for adding options.
package terminal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/input"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/KirkDiggler/spinwheel/internal/services/roulette"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const (
	pointerRune = '▼'
	segmentRune = '█'
	glowRune    = '▓'

	// recentLines caps the history shown under the option list
	recentLines = 5
)

// Screen is the part of tcell.Screen the app draws on
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
	PollEvent() tcell.Event
}

// Config holds the app dependencies
type Config struct {
	Screen    Screen
	Roulette  roulette.Service
	Messaging messaging.Service
	Status    *StatusLine

	// Notifier is optional; failed edits are only logged when nil
	Notifier roulette.Notifier

	// Logger is optional; a zero value logs nothing
	Logger zerolog.Logger
}

// App is the terminal roulette. It is also the roulette.Renderer of the
// spins it starts.
type App struct {
	screen    Screen
	roulette  roulette.Service
	messaging messaging.Service
	status    *StatusLine
	notifier  roulette.Notifier
	log       zerolog.Logger

	redraw chan struct{}
	spins  sync.WaitGroup

	mu          sync.Mutex
	frame       *wheel.Frame
	glow        int
	glowLevel   float64
	options     []models.Option
	autoDisable bool
	history     []*models.HistoryEntry
	cursor      int
	line        []rune
	result      string
}

// New creates the app; call Run to take over the screen
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Screen == nil {
		return nil, ErrNilScreen
	}
	if cfg.Roulette == nil {
		return nil, ErrNilRoulette
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Status == nil {
		return nil, ErrNilStatus
	}

	return &App{
		screen:    cfg.Screen,
		roulette:  cfg.Roulette,
		messaging: cfg.Messaging,
		status:    cfg.Status,
		notifier:  cfg.Notifier,
		log:       cfg.Logger.With().Str("component", "terminal").Logger(),
		redraw:    make(chan struct{}, 1),
		glow:      -1,
	}, nil
}

// Run handles input until the user quits or ctx ends. An in-flight spin
// is canceled before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.refresh(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	defer func() {
		a.roulette.Close()
		a.spins.Wait()
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.status.Changed():
			a.draw()
		case <-a.redraw:
			a.draw()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ctx, ev) {
				return nil
			}
			a.draw()
		}
	}
}

// Draw implements roulette.Renderer
func (a *App) Draw(ctx context.Context, frame *wheel.Frame) error {
	a.mu.Lock()
	a.frame = frame
	a.glow = -1
	a.glowLevel = 0
	a.mu.Unlock()

	a.requestDraw()
	return nil
}

// DrawGlow implements roulette.Renderer
func (a *App) DrawGlow(ctx context.Context, frame *wheel.Frame, selected int, progress float64) error {
	a.mu.Lock()
	a.frame = frame
	a.glow = selected
	a.glowLevel = wheel.GlowIntensity(progress)
	a.mu.Unlock()

	a.requestDraw()
	return nil
}

func (a *App) requestDraw() {
	select {
	case a.redraw <- struct{}{}:
	default:
	}
}

// refresh reloads the option list and history from the service
func (a *App) refresh(ctx context.Context) error {
	options, err := a.roulette.GetOptions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get options: %w", err)
	}
	history, err := a.roulette.GetHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	frame := a.roulette.Frame()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.options = options.Options
	a.autoDisable = options.AutoDisable
	a.history = history.Entries
	if a.frame == nil || !a.frame.Spinning {
		a.frame = frame
	}
	if a.cursor >= len(a.options) {
		a.cursor = len(a.options) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	return nil
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		a.screen.Clear()
	}
	return false
}

// handleKey applies one key press and reports whether the app should quit
func (a *App) handleKey(ctx context.Context, key tcell.Key, r rune, mod tcell.ModMask) bool {
	// some terminals report ctrl+letter as a modified rune
	if key == tcell.KeyRune && mod&tcell.ModCtrl != 0 {
		switch r {
		case 'c':
			key = tcell.KeyCtrlC
		case 's':
			key = tcell.KeyCtrlS
		case 'x':
			key = tcell.KeyCtrlX
		case 't':
			key = tcell.KeyCtrlT
		case 'e':
			key = tcell.KeyCtrlE
		case 'z':
			key = tcell.KeyCtrlZ
		}
	}

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		if mod&tcell.ModCtrl != 0 {
			a.spin(ctx)
			return false
		}
		a.addLine(ctx)
	case tcell.KeyCtrlS:
		a.spin(ctx)
	case tcell.KeyCtrlX:
		a.removeLast(ctx)
	case tcell.KeyCtrlT:
		a.toggleAutoDisable(ctx)
	case tcell.KeyCtrlE:
		a.toggleSelected(ctx)
	case tcell.KeyCtrlZ:
		a.undoResult(ctx)
	case tcell.KeyUp:
		a.moveCursor(-1)
	case tcell.KeyDown:
		a.moveCursor(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.mu.Lock()
		if len(a.line) > 0 {
			a.line = a.line[:len(a.line)-1]
		}
		a.mu.Unlock()
	case tcell.KeyRune:
		a.mu.Lock()
		a.line = append(a.line, r)
		a.mu.Unlock()
	}
	return false
}

// spin starts a spin in the background; the result lands in the status row
func (a *App) spin(ctx context.Context) {
	a.mu.Lock()
	a.result = ""
	a.mu.Unlock()

	a.spins.Add(1)
	go func() {
		defer a.spins.Done()

		out, err := a.roulette.Spin(ctx, &roulette.SpinInput{Renderer: a})
		if err != nil {
			// the service reports its own failures
			a.log.Debug().Err(err).Msg("spin ended without a result")
			return
		}

		msg, err := a.messaging.GetSpinResultMessage(ctx, &messaging.GetSpinResultMessageInput{
			Result: out.Result,
			Tone:   messaging.ToneCelebration,
		})
		result := out.Result
		if err == nil {
			result = msg.Message
		}
		if out.Disabled {
			result += fmt.Sprintf(" (%s is now disabled)", out.Result)
		}

		if err := a.refresh(ctx); err != nil {
			a.log.Error().Err(err).Msg("failed to refresh after spin")
		}

		a.mu.Lock()
		a.result = result
		a.mu.Unlock()
		a.requestDraw()
	}()
}

func (a *App) addLine(ctx context.Context) {
	a.mu.Lock()
	line := strings.TrimSpace(string(a.line))
	a.mu.Unlock()
	if line == "" {
		return
	}

	current, err := a.roulette.GetOptions(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	lines := append(input.Lines(current.Text), line)
	if !a.updateOptions(ctx, lines) {
		return
	}

	a.mu.Lock()
	a.line = a.line[:0]
	a.cursor = len(a.options) - 1
	a.mu.Unlock()
}

func (a *App) removeLast(ctx context.Context) {
	current, err := a.roulette.GetOptions(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if len(current.Options) == 0 {
		return
	}

	lines := make([]string, 0, len(current.Options)-1)
	for _, option := range current.Options[:len(current.Options)-1] {
		lines = append(lines, option.Text)
	}
	a.updateOptions(ctx, lines)
}

func (a *App) updateOptions(ctx context.Context, lines []string) bool {
	out, err := a.roulette.UpdateOptions(ctx, &roulette.UpdateOptionsInput{Text: input.Join(lines)})
	if err != nil {
		a.fail(ctx, err)
		return false
	}
	if out.Deferred {
		a.show("Saved. The wheel updates after this spin.")
	}
	a.apply(out.Options)
	return true
}

func (a *App) toggleSelected(ctx context.Context) {
	a.mu.Lock()
	index := a.cursor
	if index >= len(a.options) {
		a.mu.Unlock()
		return
	}
	enabled := !a.options[index].Enabled
	a.mu.Unlock()

	out, err := a.roulette.SetOptionEnabled(ctx, &roulette.SetOptionEnabledInput{
		Index:   index,
		Enabled: enabled,
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if out.Deferred {
		a.show("Saved. The wheel updates after this spin.")
	}
	a.apply(out.Options)
}

func (a *App) toggleAutoDisable(ctx context.Context) {
	a.mu.Lock()
	enabled := !a.autoDisable
	a.mu.Unlock()

	if err := a.roulette.SetAutoDisable(ctx, &roulette.SetAutoDisableInput{Enabled: enabled}); err != nil {
		a.fail(ctx, err)
		return
	}

	a.mu.Lock()
	a.autoDisable = enabled
	a.mu.Unlock()
}

// undoResult drops the newest history entry
func (a *App) undoResult(ctx context.Context) {
	out, err := a.roulette.RemoveLastResult(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if out.Entry == nil {
		return
	}
	if err := a.refresh(ctx); err != nil {
		a.fail(ctx, err)
		return
	}
	a.show(fmt.Sprintf("Removed %s from the history.", out.Entry.Result))
}

// apply stores a new option list and the wheel that goes with it
func (a *App) apply(options []models.Option) {
	frame := a.roulette.Frame()

	a.mu.Lock()
	a.options = options
	if a.cursor >= len(options) {
		a.cursor = len(options) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.frame == nil || !a.frame.Spinning {
		a.frame = frame
	}
	a.mu.Unlock()
}

func (a *App) moveCursor(delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.options) == 0 {
		return
	}
	a.cursor = (a.cursor + delta + len(a.options)) % len(a.options)
}

// fail shows err on the status line the way the services word errors
func (a *App) fail(ctx context.Context, err error) {
	a.log.Error().Err(err).Msg("edit failed")

	out, msgErr := a.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil || out.Silent {
		return
	}
	a.show(out.Message)
}

func (a *App) show(message string) {
	if a.notifier == nil {
		return
	}
	a.notifier.Show(models.Notification{Message: message})
}
