package discord

import (
	"testing"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	messagingMocks "github.com/KirkDiggler/spinwheel/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSplitCustomID(t *testing.T) {
	prefix, action := splitCustomID(customID(roulettePrefix, actionSpin))
	assert.Equal(t, "roulette", prefix)
	assert.Equal(t, "spin", action)

	prefix, action = splitCustomID("legacy")
	assert.Equal(t, "legacy", prefix)
	assert.Equal(t, "", action)
}

func TestModalValues(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: customID(assignPrefix, actionInputs),
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: inputRoles, Value: "Tank\nHealer"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: inputUsernames, Value: "alice"},
			}},
		},
	}

	assert.Equal(t, map[string]string{
		inputRoles:     "Tank\nHealer",
		inputUsernames: "alice",
	}, modalValues(data))
}

func TestOptionMap(t *testing.T) {
	opts := optionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "position", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		{Name: "enabled", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
	})

	assert.Equal(t, int64(3), opts["position"].IntValue())
	assert.True(t, opts["enabled"].BoolValue())
	assert.Nil(t, opts["missing"])
}

func TestCommandDefinitions(t *testing.T) {
	registry := &Registry{}

	roulette, err := NewRouletteCommand(&RouletteCommandConfig{
		Registry:  registry,
		Messaging: messagingMocks.NewMockService(gomock.NewController(t)),
		Clock:     &clock.DefaultClock{},
	})
	assert.NoError(t, err)
	assert.Equal(t, "roulette", roulette.GetName())
	assert.Equal(t, roulettePrefix, roulette.Prefix())

	var subs []string
	for _, opt := range roulette.GetCommand().Options {
		subs = append(subs, opt.Name)
	}
	assert.Equal(t, []string{"spin", "edit", "history", "clear-history", "undo", "reset", "auto-disable", "toggle"}, subs)

	assign, err := NewAssignCommand(&AssignCommandConfig{Registry: registry})
	assert.NoError(t, err)
	assert.Equal(t, assignPrefix, assign.Prefix())

	_, err = NewRouletteCommand(&RouletteCommandConfig{Registry: registry})
	assert.ErrorIs(t, err, ErrNilMessaging)

	_, err = NewAssignCommand(&AssignCommandConfig{})
	assert.ErrorIs(t, err, ErrNilRegistry)
}
