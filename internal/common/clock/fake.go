package clock

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Fake is a controllable Clock for tests. Time only moves when Advance is
// called; sleepers wake once the fake time reaches their deadline.
type Fake struct {
	mu       sync.Mutex
	now      time.Time
	sleepers []*sleeper
	changed  chan struct{}
}

type sleeper struct {
	until time.Time
	done  chan struct{}
}

// NewFake creates a fake clock starting at start
func NewFake(start time.Time) *Fake {
	return &Fake{
		now:     start,
		changed: make(chan struct{}),
	}
}

// Now returns the current fake time
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Sleep blocks until Advance moves the fake time past now+d or ctx ends
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	f.mu.Lock()
	s := &sleeper{
		until: f.now.Add(d),
		done:  make(chan struct{}),
	}
	f.sleepers = append(f.sleepers, s)
	f.notifyLocked()
	f.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		f.mu.Lock()
		f.removeLocked(s)
		f.notifyLocked()
		f.mu.Unlock()
		return ctx.Err()
	}
}

// Advance moves the fake time forward and wakes every sleeper whose
// deadline has been reached, earliest deadline first
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)

	sort.SliceStable(f.sleepers, func(i, j int) bool {
		return f.sleepers[i].until.Before(f.sleepers[j].until)
	})

	remaining := f.sleepers[:0]
	for _, s := range f.sleepers {
		if !s.until.After(f.now) {
			close(s.done)
			continue
		}
		remaining = append(remaining, s)
	}
	f.sleepers = remaining
	f.notifyLocked()
	f.mu.Unlock()
}

// Sleepers returns how many goroutines are currently blocked in Sleep
func (f *Fake) Sleepers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sleepers)
}

// BlockUntil waits until at least n goroutines are blocked in Sleep or ctx
// ends. Tests use it to make sure the code under test reached a suspension
// point before advancing time.
func (f *Fake) BlockUntil(ctx context.Context, n int) error {
	for {
		f.mu.Lock()
		if len(f.sleepers) >= n {
			f.mu.Unlock()
			return nil
		}
		changed := f.changed
		f.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (f *Fake) removeLocked(target *sleeper) {
	for i, s := range f.sleepers {
		if s == target {
			f.sleepers = append(f.sleepers[:i], f.sleepers[i+1:]...)
			return
		}
	}
}

func (f *Fake) notifyLocked() {
	close(f.changed)
	f.changed = make(chan struct{})
}
