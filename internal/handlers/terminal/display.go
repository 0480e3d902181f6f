package terminal

import (
	"context"
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/models"
)

// StatusLine is the notify.Display of the terminal: the bottom row shows
// the visible notification
type StatusLine struct {
	mu      sync.Mutex
	message string
	changed chan struct{}
}

// NewStatusLine creates an empty status line
func NewStatusLine() *StatusLine {
	return &StatusLine{
		changed: make(chan struct{}, 1),
	}
}

// Show implements notify.Display
func (s *StatusLine) Show(ctx context.Context, n models.Notification) error {
	s.mu.Lock()
	s.message = n.Message
	s.mu.Unlock()

	s.signal()
	return nil
}

// Hide implements notify.Display. A newer message is left alone.
func (s *StatusLine) Hide(ctx context.Context, n models.Notification) error {
	s.mu.Lock()
	if s.message != n.Message {
		s.mu.Unlock()
		return nil
	}
	s.message = ""
	s.mu.Unlock()

	s.signal()
	return nil
}

// Message is the visible notification, empty when none is shown
func (s *StatusLine) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Changed fires after every Show or Hide; bursts collapse into one
func (s *StatusLine) Changed() <-chan struct{} {
	return s.changed
}

func (s *StatusLine) signal() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}
