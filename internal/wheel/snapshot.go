package wheel

import (
	"sync"

	"github.com/KirkDiggler/spinwheel/internal/common/uuid"
	"github.com/KirkDiggler/spinwheel/internal/models"
)

// Snapshot is an immutable copy of the option list taken at spin start
type Snapshot struct {
	id      string
	options []models.Option
}

// ID identifies the snapshot for Release
func (s *Snapshot) ID() string {
	return s.id
}

// Options returns a copy of the locked options
func (s *Snapshot) Options() []models.Option {
	return append([]models.Option(nil), s.options...)
}

// Len is the number of locked options
func (s *Snapshot) Len() int {
	return len(s.options)
}

// SnapshotLockConfig holds the lock dependencies
type SnapshotLockConfig struct {
	IDGenerator uuid.Generator
}

// SnapshotLock isolates an in-flight spin from edits to the live options.
// Edits made while locked are recorded and reported once on release.
type SnapshotLock struct {
	mu          sync.Mutex
	ids         uuid.Generator
	active      *Snapshot
	pendingEdit bool
}

// NewSnapshotLock creates an unlocked lock
func NewSnapshotLock(cfg *SnapshotLockConfig) (*SnapshotLock, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.IDGenerator == nil {
		return nil, ErrNilIDGenerator
	}

	return &SnapshotLock{ids: cfg.IDGenerator}, nil
}

// Acquire copies live into a new snapshot and locks
func (l *SnapshotLock) Acquire(live []models.Option) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active != nil {
		return nil, ErrAlreadyLocked
	}

	l.active = &Snapshot{
		id:      l.ids.NewID(),
		options: append([]models.Option(nil), live...),
	}
	l.pendingEdit = false

	return l.active, nil
}

// MarkEdited records a live edit. It returns true when the edit was made
// under a lock and its derived-state refresh is deferred to Release.
func (l *SnapshotLock) MarkEdited() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active == nil {
		return false
	}
	l.pendingEdit = true
	return true
}

// Release unlocks the snapshot with the given id. The bool reports whether
// edits were made while locked; the flag is cleared by this call.
func (l *SnapshotLock) Release(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active == nil {
		return false, ErrNotLocked
	}
	if l.active.id != id {
		return false, ErrUnknownSnapshot
	}

	pending := l.pendingEdit
	l.active = nil
	l.pendingEdit = false
	return pending, nil
}

// Locked reports whether a snapshot is active
func (l *SnapshotLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active != nil
}

// Current returns the active snapshot or nil
func (l *SnapshotLock) Current() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// PendingEdit reports whether edits are waiting for Release
func (l *SnapshotLock) PendingEdit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pendingEdit
}
