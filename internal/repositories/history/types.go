package history

import "github.com/KirkDiggler/spinwheel/internal/models"

// DefaultLimit is the number of entries kept per scope
const DefaultLimit = 20

// AddResultInput contains parameters for recording a result
type AddResultInput struct {
	Scope string
	Entry *models.HistoryEntry
}

// ListInput contains parameters for listing a history
type ListInput struct {
	Scope string
}

// ListOutput contains a history, newest first
type ListOutput struct {
	Entries []*models.HistoryEntry
}

// ClearInput contains parameters for clearing a history
type ClearInput struct {
	Scope string
}

// SetInput contains parameters for replacing a history. Entries are
// ordered newest first.
type SetInput struct {
	Scope   string
	Entries []*models.HistoryEntry
}
