package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/spinwheel/internal/random"
)

// ServiceConfig holds the messaging service dependencies
type ServiceConfig struct {
	// Random picks between message variants; a time seeded Roller is
	// used when nil
	Random random.Source
}

// service implements the Service interface
type service struct {
	rand random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	src := config.Random
	if src == nil {
		src = random.New(&random.Config{})
	}

	return &service{
		rand: src,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetErrorMessage returns a user facing error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	kind := KindOf(input.Err)
	out := &GetErrorMessageOutput{Kind: kind}

	switch kind {
	case KindCanceled:
		out.Silent = true
	case KindConcurrency:
		// the in-flight run continues; nothing to tell the user
		out.Silent = true
		out.Title = "Busy"
		out.Message = "An animation is already in progress."
	case KindValidation:
		out.Title = "Check your input"
		out.Message = sentence(input.Err.Error())
		if tone == ToneFunny {
			out.Title = s.pick([]string{
				"Hold up!",
				"Not quite!",
				"The wheel refuses!",
			})
		}
	default:
		out.Title = "Something went wrong"
		out.Message = "The operation failed. Please try again."
		if tone == ToneFunny {
			out.Message = s.pick([]string{
				"Something went wrong! Try again.",
				"Oops! The wheel fell off. Try again.",
				"Technical difficulties! The wheel is being recalibrated.",
			})
		}
	}

	return out, nil
}

// GetSpinResultMessage announces the selected option
func (s *service) GetSpinResultMessage(ctx context.Context, input *GetSpinResultMessageInput) (*GetSpinResultMessageOutput, error) {
	if input == nil || input.Result == "" {
		return nil, errors.New("input and result cannot be empty")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneCelebration
	}

	var message string
	switch tone {
	case ToneNeutral:
		message = fmt.Sprintf("Result: %s", input.Result)
	case ToneFunny:
		message = fmt.Sprintf(s.pick([]string{
			"The wheel has spoken: **%s**. No take-backs.",
			"Round and round it goes, and it stops on **%s**!",
			"**%s**. The wheel does not do refunds.",
		}), input.Result)
	default:
		message = fmt.Sprintf(s.pick([]string{
			"🎉 **%s**!",
			"And the winner is... **%s**!",
			"The wheel picked **%s**!",
		}), input.Result)
	}

	return &GetSpinResultMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetAssignmentCompleteMessage summarises a finished assignment
func (s *service) GetAssignmentCompleteMessage(ctx context.Context, input *GetAssignmentCompleteMessageInput) (*GetAssignmentCompleteMessageOutput, error) {
	if input == nil || input.Statistics == nil {
		return nil, errors.New("input and statistics cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	stats := input.Statistics
	var b strings.Builder
	fmt.Fprintf(&b, "Assigned %d %s to %d %s.",
		stats.Assignments, plural(stats.Assignments, "role", "roles"),
		stats.TotalUsernames, plural(stats.TotalUsernames, "person", "people"))

	if stats.TotalRoles > stats.TotalUsernames {
		b.WriteString(" Some people got more than one role.")
	}
	if tone == ToneCelebration || tone == ToneFunny {
		b.WriteString(" " + s.pick([]string{
			"Good luck!",
			"No trading!",
			"Make it count!",
		}))
	}

	return &GetAssignmentCompleteMessageOutput{
		Message: b.String(),
		Tone:    tone,
	}, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// sentence capitalises msg and ends it with a period
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "!") {
		msg += "."
	}
	return msg
}
