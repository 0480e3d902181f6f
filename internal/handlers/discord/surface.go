package discord

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DefaultEditInterval spaces the message edits of a running spin so a
// channel stays under Discord's edit rate limit
const DefaultEditInterval = time.Second

// Messenger is the part of *discordgo.Session the animated surfaces use
type Messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

func editMessage(ctx context.Context, m Messenger, channelID, messageID, content string, components []discordgo.MessageComponent) error {
	_, err := m.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Content:    &content,
		Components: &components,
	}, discordgo.WithContext(ctx))
	return err
}

// wheelRenderer animates a spin by editing one channel message. Frames
// arriving faster than the edit interval are dropped; the at-rest frame
// is always sent.
type wheelRenderer struct {
	messenger Messenger
	clock     clock.Clock
	log       zerolog.Logger
	channelID string
	messageID string
	interval  time.Duration

	mu        sync.Mutex
	lastEdit  time.Time
	glowShown bool
}

func newWheelRenderer(m Messenger, c clock.Clock, log zerolog.Logger, channelID, messageID string, interval time.Duration) *wheelRenderer {
	if interval <= 0 {
		interval = DefaultEditInterval
	}
	return &wheelRenderer{
		messenger: m,
		clock:     c,
		log:       log,
		channelID: channelID,
		messageID: messageID,
		interval:  interval,
	}
}

// due reports whether an in-flight frame may be sent now
func (r *wheelRenderer) due() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if !r.lastEdit.IsZero() && now.Sub(r.lastEdit) < r.interval {
		return false
	}
	r.lastEdit = now
	return true
}

// Draw implements roulette.Renderer
func (r *wheelRenderer) Draw(ctx context.Context, frame *wheel.Frame) error {
	if frame.Spinning && !r.due() {
		return nil
	}
	return editMessage(ctx, r.messenger, r.channelID, r.messageID, renderWheel(frame, -1), wheelComponents(frame.Spinning))
}

// DrawGlow implements roulette.Renderer; only the first glow step is sent
func (r *wheelRenderer) DrawGlow(ctx context.Context, frame *wheel.Frame, selected int, progress float64) error {
	r.mu.Lock()
	shown := r.glowShown
	r.glowShown = true
	r.mu.Unlock()

	if shown {
		return nil
	}
	return editMessage(ctx, r.messenger, r.channelID, r.messageID, renderWheel(frame, selected), wheelComponents(true))
}

// Announce replaces the message with the at-rest wheel and a result line
func (r *wheelRenderer) Announce(ctx context.Context, frame *wheel.Frame, message string) error {
	return editMessage(ctx, r.messenger, r.channelID, r.messageID, renderWheel(frame, -1)+"\n\n"+message, wheelComponents(false))
}

// assignmentPresenter reveals assignments by editing one channel message
type assignmentPresenter struct {
	messenger Messenger
	channelID string
	messageID string
	total     int

	mu        sync.Mutex
	revealed  []models.Assignment
	highlight int
}

func newAssignmentPresenter(m Messenger, channelID, messageID string, total int) *assignmentPresenter {
	return &assignmentPresenter{
		messenger: m,
		channelID: channelID,
		messageID: messageID,
		total:     total,
		highlight: -1,
	}
}

// Reveal implements assign.Presenter. The entry shows up with the
// highlight edit that follows.
func (p *assignmentPresenter) Reveal(ctx context.Context, index int, a models.Assignment) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index == len(p.revealed) {
		p.revealed = append(p.revealed, a)
	}
	return nil
}

// Highlight implements assign.Presenter
func (p *assignmentPresenter) Highlight(ctx context.Context, index int, on bool) error {
	p.mu.Lock()
	if on {
		p.highlight = index
	} else {
		p.highlight = -1
	}
	content := renderAssignments(p.revealed, p.total, p.highlight)
	p.mu.Unlock()

	return editMessage(ctx, p.messenger, p.channelID, p.messageID, content, assignComponents(true))
}

// Finish shows the whole result with the completion message
func (p *assignmentPresenter) Finish(ctx context.Context, assignments []models.Assignment, message string) error {
	content := renderAssignments(assignments, len(assignments), -1)
	if message != "" {
		content += "\n\n" + message
	}
	return editMessage(ctx, p.messenger, p.channelID, p.messageID, content, assignComponents(false))
}

// Display posts notifications to the channel named by their Target and
// deletes them when the queue hides them
type Display struct {
	messenger Messenger
	log       zerolog.Logger

	mu    sync.Mutex
	shown map[models.Notification][]string
}

// DisplayConfig holds the display dependencies
type DisplayConfig struct {
	Messenger Messenger

	// Logger is optional; a zero value logs nothing
	Logger zerolog.Logger
}

// NewDisplay creates a channel notification display
func NewDisplay(cfg *DisplayConfig) (*Display, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	return &Display{
		messenger: cfg.Messenger,
		log:       cfg.Logger,
		shown:     make(map[models.Notification][]string),
	}, nil
}

// Show implements notify.Display
func (d *Display) Show(ctx context.Context, n models.Notification) error {
	if n.Target == "" {
		d.log.Debug().Str("message", n.Message).Msg("notification without a channel dropped")
		return nil
	}

	msg, err := d.messenger.ChannelMessageSendComplex(n.Target, &discordgo.MessageSend{
		Content: "⚠️ " + n.Message,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.shown[n] = append(d.shown[n], msg.ID)
	d.mu.Unlock()
	return nil
}

// Hide implements notify.Display
func (d *Display) Hide(ctx context.Context, n models.Notification) error {
	d.mu.Lock()
	ids := d.shown[n]
	if len(ids) == 0 {
		d.mu.Unlock()
		return nil
	}
	id := ids[0]
	if len(ids) == 1 {
		delete(d.shown, n)
	} else {
		d.shown[n] = ids[1:]
	}
	d.mu.Unlock()

	return d.messenger.ChannelMessageDelete(n.Target, id, discordgo.WithContext(ctx))
}
