package messaging

import "github.com/KirkDiggler/spinwheel/internal/models"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorKind groups errors by how they are surfaced
type ErrorKind string

const (
	// KindValidation is bad user input, shown as is
	KindValidation ErrorKind = "validation"

	// KindConcurrency is a rejected overlapping request, logged only
	KindConcurrency ErrorKind = "concurrency"

	// KindResolution is a broken contract (no options to resolve)
	KindResolution ErrorKind = "resolution"

	// KindCanceled is a teardown, never shown
	KindCanceled ErrorKind = "canceled"

	// KindUnknown is anything else
	KindUnknown ErrorKind = "unknown"
)

// GetErrorMessageInput is the input for GetErrorMessage
type GetErrorMessageInput struct {
	Err  error
	Tone MessageTone
}

// GetErrorMessageOutput is the output for GetErrorMessage
type GetErrorMessageOutput struct {
	Kind    ErrorKind
	Title   string
	Message string

	// Silent is true for errors the user should not see
	Silent bool
}

// GetSpinResultMessageInput is the input for GetSpinResultMessage
type GetSpinResultMessageInput struct {
	Result string
	Tone   MessageTone
}

// GetSpinResultMessageOutput is the output for GetSpinResultMessage
type GetSpinResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetAssignmentCompleteMessageInput is the input for GetAssignmentCompleteMessage
type GetAssignmentCompleteMessageInput struct {
	Statistics *models.AssignmentStatistics
	Tone       MessageTone
}

// GetAssignmentCompleteMessageOutput is the output for GetAssignmentCompleteMessage
type GetAssignmentCompleteMessageOutput struct {
	Message string
	Tone    MessageTone
}
