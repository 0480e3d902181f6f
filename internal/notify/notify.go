// Package notify serializes transient status and error messages so that at
// most one is visible at a time, first in first out.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_display.go github.com/KirkDiggler/spinwheel/internal/notify Display

// Display is the surface notifications are drawn on
type Display interface {
	// Show makes the notification visible
	Show(ctx context.Context, n models.Notification) error

	// Hide removes the notification
	Hide(ctx context.Context, n models.Notification) error
}

// NotifyError is a custom error type for notification queue errors
type NotifyError string

// Error implements the error interface
func (e NotifyError) Error() string {
	return string(e)
}

const (
	ErrNilConfig  NotifyError = "config cannot be nil"
	ErrNilClock   NotifyError = "clock cannot be nil"
	ErrNilDisplay NotifyError = "display cannot be nil"
)

// Config holds the queue dependencies
type Config struct {
	Clock   clock.Clock
	Display Display

	// Logger is optional; a zero value logs nothing
	Logger zerolog.Logger

	// DefaultDuration applies to entries without a duration. Zero means
	// models.DefaultNotificationDuration.
	DefaultDuration time.Duration
}

// Queue displays notifications one at a time. A single Queue is shared by
// every widget of a process.
type Queue struct {
	clock           clock.Clock
	display         Display
	log             zerolog.Logger
	defaultDuration time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wake   chan struct{}
	wg     sync.WaitGroup

	// displayMu serializes calls into the Display
	displayMu sync.Mutex

	mu            sync.Mutex
	pending       []models.Notification
	current       *models.Notification
	currentSeq    uint64
	cancelCurrent context.CancelFunc
	closed        bool
}

// New creates a queue and starts its display loop. Call Close to stop it.
func New(cfg *Config) (*Queue, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Display == nil {
		return nil, ErrNilDisplay
	}

	q := &Queue{
		clock:           cfg.Clock,
		display:         cfg.Display,
		log:             cfg.Logger,
		defaultDuration: cfg.DefaultDuration,
		wake:            make(chan struct{}, 1),
	}
	if q.defaultDuration <= 0 {
		q.defaultDuration = models.DefaultNotificationDuration
	}
	q.ctx, q.cancel = context.WithCancel(context.Background())

	q.wg.Add(1)
	go q.run()

	return q, nil
}

// Show enqueues n. It is displayed right away when nothing else is.
func (q *Queue) Show(n models.Notification) {
	if n.Duration <= 0 {
		n.Duration = q.defaultDuration
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, n)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// ShowMessage enqueues message with the default duration on the default
// surface
func (q *Queue) ShowMessage(message string) {
	q.Show(models.Notification{Message: message})
}

// ClearAll drops every queued entry and hides the displayed one
func (q *Queue) ClearAll() {
	q.displayMu.Lock()
	defer q.displayMu.Unlock()

	q.mu.Lock()
	q.pending = nil
	current := q.current
	q.current = nil
	if q.cancelCurrent != nil {
		q.cancelCurrent()
		q.cancelCurrent = nil
	}
	q.mu.Unlock()

	if current != nil {
		q.hide(*current)
	}
}

// Pending returns how many entries wait behind the displayed one
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Displayed returns the entry currently visible
func (q *Queue) Displayed() (models.Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return models.Notification{}, false
	}
	return *q.current, true
}

// Close stops the display loop. The visible entry is hidden and queued
// entries are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.cancel()
	q.wg.Wait()
	q.ClearAll()
}

func (q *Queue) run() {
	defer q.wg.Done()

	for {
		entry, seq, displayCtx, ok := q.next()
		if !ok {
			select {
			case <-q.wake:
				continue
			case <-q.ctx.Done():
				return
			}
		}

		// ends early when ClearAll or Close cancels displayCtx
		_ = q.clock.Sleep(displayCtx, entry.Duration)
		q.dismiss(seq, entry)

		if q.ctx.Err() != nil {
			return
		}
	}
}

// next pops the head of the queue and displays it
func (q *Queue) next() (models.Notification, uint64, context.Context, bool) {
	q.displayMu.Lock()
	defer q.displayMu.Unlock()

	q.mu.Lock()
	if len(q.pending) == 0 || q.ctx.Err() != nil {
		q.mu.Unlock()
		return models.Notification{}, 0, nil, false
	}

	entry := q.pending[0]
	q.pending = q.pending[1:]
	q.currentSeq++
	seq := q.currentSeq
	q.current = &entry
	displayCtx, cancel := context.WithCancel(q.ctx)
	q.cancelCurrent = cancel
	q.mu.Unlock()

	if err := q.display.Show(q.ctx, entry); err != nil {
		q.log.Debug().Err(err).Str("message", entry.Message).Msg("failed to show notification")
	}

	return entry, seq, displayCtx, true
}

// dismiss hides entry unless ClearAll already did
func (q *Queue) dismiss(seq uint64, entry models.Notification) {
	q.displayMu.Lock()
	defer q.displayMu.Unlock()

	q.mu.Lock()
	if q.current == nil || q.currentSeq != seq {
		q.mu.Unlock()
		return
	}
	q.current = nil
	if q.cancelCurrent != nil {
		q.cancelCurrent()
		q.cancelCurrent = nil
	}
	q.mu.Unlock()

	q.hide(entry)
}

func (q *Queue) hide(entry models.Notification) {
	if err := q.display.Hide(context.WithoutCancel(q.ctx), entry); err != nil {
		q.log.Debug().Err(err).Str("message", entry.Message).Msg("failed to hide notification")
	}
}
