package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeMessenger records every message call
type fakeMessenger struct {
	mu      sync.Mutex
	sent    []*discordgo.MessageSend
	edits   []*discordgo.MessageEdit
	deleted []string
	nextID  int
	sendErr error
}

func (m *fakeMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.nextID++
	m.sent = append(m.sent, data)
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", m.nextID), ChannelID: channelID}, nil
}

func (m *fakeMessenger) ChannelMessageEditComplex(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edits = append(m.edits, edit)
	return &discordgo.Message{ID: edit.ID, ChannelID: edit.Channel}, nil
}

func (m *fakeMessenger) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, channelID+"/"+messageID)
	return nil
}

func (m *fakeMessenger) lastContent() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.edits) == 0 {
		return ""
	}
	return *m.edits[len(m.edits)-1].Content
}

type WheelRendererTestSuite struct {
	suite.Suite
	messenger *fakeMessenger
	clock     *clock.Fake
	renderer  *wheelRenderer
	ctx       context.Context
}

func (s *WheelRendererTestSuite) SetupTest() {
	s.messenger = &fakeMessenger{}
	s.clock = clock.NewFake(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC))
	s.renderer = newWheelRenderer(s.messenger, s.clock, zerolog.Nop(), "chan-1", "msg-1", time.Second)
	s.ctx = context.Background()
}

func TestWheelRendererSuite(t *testing.T) {
	suite.Run(t, new(WheelRendererTestSuite))
}

func (s *WheelRendererTestSuite) TestDraw_ThrottlesSpinningFrames() {
	frame := frameOf("A", "B")
	frame.Spinning = true

	s.Require().NoError(s.renderer.Draw(s.ctx, frame))
	s.Require().NoError(s.renderer.Draw(s.ctx, frame.WithAngle(0.1)))
	s.Len(s.messenger.edits, 1)

	s.clock.Advance(time.Second)
	s.Require().NoError(s.renderer.Draw(s.ctx, frame.WithAngle(0.2)))
	s.Len(s.messenger.edits, 2)

	edit := s.messenger.edits[1]
	s.Equal("chan-1", edit.Channel)
	s.Equal("msg-1", edit.ID)
	row := (*edit.Components)[0].(discordgo.ActionsRow)
	s.True(row.Components[0].(discordgo.Button).Disabled)
}

func (s *WheelRendererTestSuite) TestDraw_AtRestFrameIsAlwaysSent() {
	frame := frameOf("A", "B")
	frame.Spinning = true
	s.Require().NoError(s.renderer.Draw(s.ctx, frame))

	rest := frame.WithAngle(1)
	rest.Spinning = false
	s.Require().NoError(s.renderer.Draw(s.ctx, rest))

	s.Require().Len(s.messenger.edits, 2)
	row := (*s.messenger.edits[1].Components)[0].(discordgo.ActionsRow)
	s.False(row.Components[0].(discordgo.Button).Disabled)
}

func (s *WheelRendererTestSuite) TestDrawGlow_SendsOnce() {
	frame := frameOf("A", "B")
	for _, p := range []float64{0.25, 0.5, 1} {
		s.Require().NoError(s.renderer.DrawGlow(s.ctx, frame, 0, p))
	}
	s.Require().Len(s.messenger.edits, 1)
	s.Contains(s.messenger.lastContent(), "✨ **A** ✨")
}

func (s *WheelRendererTestSuite) TestAnnounce() {
	s.Require().NoError(s.renderer.Announce(s.ctx, frameOf("A", "B"), "And the winner is... **A**!"))
	s.Contains(s.messenger.lastContent(), "\n\nAnd the winner is... **A**!")
}

func (s *WheelRendererTestSuite) TestReleaseWheel_DeletesCreatedMessage() {
	releaseWheel(s.ctx, s.messenger, zerolog.Nop(), "chan-1", "msg-9", true, frameOf("A", "B"))

	s.Equal([]string{"chan-1/msg-9"}, s.messenger.deleted)
	s.Empty(s.messenger.edits)
}

func (s *WheelRendererTestSuite) TestReleaseWheel_RedrawsExistingMessageAtRest() {
	releaseWheel(s.ctx, s.messenger, zerolog.Nop(), "chan-1", "msg-1", false, frameOf("A", "B"))

	s.Empty(s.messenger.deleted)
	s.Require().Len(s.messenger.edits, 1)
	s.Equal("msg-1", s.messenger.edits[0].ID)
	row := (*s.messenger.edits[0].Components)[0].(discordgo.ActionsRow)
	s.False(row.Components[0].(discordgo.Button).Disabled)
}

func TestAssignmentPresenter_EditsOnHighlight(t *testing.T) {
	m := &fakeMessenger{}
	p := newAssignmentPresenter(m, "chan-1", "msg-1", 2)
	ctx := context.Background()

	require.NoError(t, p.Reveal(ctx, 0, models.Assignment{Role: "Tank", Username: "bob"}))
	assert.Empty(t, m.edits)

	require.NoError(t, p.Highlight(ctx, 0, true))
	assert.Contains(t, m.lastContent(), "👉 **Tank** → bob")
	assert.Contains(t, m.lastContent(), "_1 to go…_")

	require.NoError(t, p.Highlight(ctx, 0, false))
	assert.NotContains(t, m.lastContent(), "👉")

	all := []models.Assignment{
		{Role: "Tank", Username: "bob"},
		{Role: "Healer", Username: "alice", Index: 1},
	}
	require.NoError(t, p.Finish(ctx, all, "Assigned 2 roles to 2 people."))
	assert.Contains(t, m.lastContent(), "**Healer** → alice")
	assert.Contains(t, m.lastContent(), "\n\nAssigned 2 roles to 2 people.")
	assert.Len(t, m.edits, 3)
}

func TestDisplay_ShowAndHideByTarget(t *testing.T) {
	m := &fakeMessenger{}
	d, err := NewDisplay(&DisplayConfig{Messenger: m})
	require.NoError(t, err)
	ctx := context.Background()

	n := models.Notification{Message: "Please enable at least 2 options.", Target: "chan-1"}
	require.NoError(t, d.Show(ctx, n))
	require.NoError(t, d.Show(ctx, n))
	require.Len(t, m.sent, 2)
	assert.Equal(t, "⚠️ Please enable at least 2 options.", m.sent[0].Content)

	// duplicates are removed oldest first
	require.NoError(t, d.Hide(ctx, n))
	require.NoError(t, d.Hide(ctx, n))
	assert.Equal(t, []string{"chan-1/msg-1", "chan-1/msg-2"}, m.deleted)

	// nothing left to hide
	require.NoError(t, d.Hide(ctx, n))
	assert.Len(t, m.deleted, 2)
}

func TestDisplay_DropsUntargeted(t *testing.T) {
	m := &fakeMessenger{}
	d, err := NewDisplay(&DisplayConfig{Messenger: m})
	require.NoError(t, err)

	require.NoError(t, d.Show(context.Background(), models.Notification{Message: "hi"}))
	assert.Empty(t, m.sent)
}

func TestDisplay_SendError(t *testing.T) {
	m := &fakeMessenger{sendErr: errors.New("missing access")}
	d, err := NewDisplay(&DisplayConfig{Messenger: m})
	require.NoError(t, err)

	n := models.Notification{Message: "hi", Target: "chan-1"}
	assert.Error(t, d.Show(context.Background(), n))
	require.NoError(t, d.Hide(context.Background(), n))
	assert.Empty(t, m.deleted)
}

func TestNewDisplay_Validation(t *testing.T) {
	_, err := NewDisplay(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = NewDisplay(&DisplayConfig{})
	assert.ErrorIs(t, err, ErrNilMessenger)
}
