package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/KirkDiggler/spinwheel/internal/services/roulette"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

const (
	roulettePrefix = "roulette"

	actionSpin    = "spin"
	actionOptions = "options"

	inputOptions = "options"

	// modalTextLimit is Discord's cap on a paragraph input
	modalTextLimit = 4000
)

// RouletteCommand handles the /roulette command and the Spin button
type RouletteCommand struct {
	BaseCommand
	registry     *Registry
	messaging    messaging.Service
	clock        clock.Clock
	editInterval time.Duration
	log          zerolog.Logger
}

// RouletteCommandConfig holds the command dependencies
type RouletteCommandConfig struct {
	Registry  *Registry
	Messaging messaging.Service
	Clock     clock.Clock

	// EditInterval defaults to DefaultEditInterval
	EditInterval time.Duration

	Logger zerolog.Logger
}

// NewRouletteCommand creates a new roulette command handler
func NewRouletteCommand(cfg *RouletteCommandConfig) (*RouletteCommand, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &RouletteCommand{
		BaseCommand: BaseCommand{
			Name:        "roulette",
			Description: "Spin a wheel of options",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "spin",
					Description: "Spin the wheel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit the wheel options, one per line",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent results",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear-history",
					Description: "Forget every recorded result",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Remove the latest result from the history",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Forget the options, history and saved lists of this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "auto-disable",
					Description: "Disable the winning option after each spin",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "enabled",
							Description: "Turn auto-disable on or off",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "toggle",
					Description: "Enable or disable a single option",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "position",
							Description: "Option number as listed by /roulette edit",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "enabled",
							Description: "Whether the option can be picked",
							Required:    true,
						},
					},
				},
			},
		},
		registry:     cfg.Registry,
		messaging:    cfg.Messaging,
		clock:        cfg.Clock,
		editInterval: cfg.EditInterval,
		log:          cfg.Logger.With().Str("command", "roulette").Logger(),
	}, nil
}

// Prefix implements ComponentHandler
func (c *RouletteCommand) Prefix() string {
	return roulettePrefix
}

// Handle processes a Discord interaction for the roulette command
func (c *RouletteCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "spin":
		return c.handleSpin(s, i)
	case "edit":
		return c.handleEdit(s, i)
	case "history":
		return c.handleHistory(s, i)
	case "clear-history":
		return c.handleClearHistory(s, i)
	case "undo":
		return c.handleUndo(s, i)
	case "reset":
		return c.handleReset(s, i)
	case "auto-disable":
		return c.handleAutoDisable(s, i, optionMap(sub.Options))
	case "toggle":
		return c.handleToggle(s, i, optionMap(sub.Options))
	}

	return ErrUnknownSubcommand
}

// HandleComponent implements ComponentHandler
func (c *RouletteCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, action := splitCustomID(i.MessageComponentData().CustomID); action == actionSpin {
		return c.handleSpin(s, i)
	}
	return RespondWithError(s, i, "Unknown button.")
}

// HandleModal implements ComponentHandler
func (c *RouletteCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	if _, action := splitCustomID(data.CustomID); action != actionOptions {
		return RespondWithError(s, i, "Unknown form.")
	}

	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	out, err := svc.UpdateOptions(ctx, &roulette.UpdateOptionsInput{
		Text: modalValues(data)[inputOptions],
	})
	if err != nil {
		c.log.Error().Err(err).Msg("failed to update options")
		return RespondWithError(s, i, "Failed to save the options.")
	}

	msg := fmt.Sprintf("Saved %d options.\n%s", len(out.Options), renderOptions(out.Options))
	if out.Deferred {
		msg += "\n_The wheel picks up the change when the current spin ends._"
	}
	return RespondWithEphemeralMessage(s, i, msg)
}

// handleSpin acknowledges the interaction and plays the spin in the
// background. A slash command gets a new wheel message; the Spin button
// animates the message it sits on.
func (c *RouletteCommand) handleSpin(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	svc, err := c.registry.Roulette(context.Background(), i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	if svc.IsSpinning() {
		return RespondWithEphemeralMessage(s, i, "The wheel is already spinning.")
	}

	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer spin response: %w", err)
	}

	messageID := ""
	if i.Type == discordgo.InteractionMessageComponent && i.Message != nil {
		messageID = i.Message.ID
	}

	go c.play(s, i, svc, messageID)
	return nil
}

func (c *RouletteCommand) play(s *discordgo.Session, i *discordgo.InteractionCreate, svc roulette.Service, messageID string) {
	ctx := context.Background()
	log := c.log.With().Str("channel", i.ChannelID).Logger()

	created := messageID == ""
	if created {
		msg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content:    renderWheel(svc.Frame(), -1),
			Components: wheelComponents(true),
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create wheel message")
			return
		}
		messageID = msg.ID
	}

	renderer := newWheelRenderer(s, c.clock, log, i.ChannelID, messageID, c.editInterval)

	out, err := svc.Spin(ctx, &roulette.SpinInput{
		Renderer: renderer,
		Target:   i.ChannelID,
	})
	if err != nil {
		if messaging.IsConcurrency(err) {
			log.Warn().Msg("spin rejected while spinning")
			releaseWheel(ctx, s, log, i.ChannelID, messageID, created, svc.Frame())
			return
		}
		log.Debug().Err(err).Msg("spin ended without a result")
		if err := renderer.Draw(ctx, svc.Frame()); err != nil {
			log.Debug().Err(err).Msg("failed to reset wheel message")
		}
		return
	}

	announce, err := c.messaging.GetSpinResultMessage(ctx, &messaging.GetSpinResultMessageInput{
		Result: out.Result,
		Tone:   messaging.ToneCelebration,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build result message")
		return
	}

	text := announce.Message
	if out.Disabled {
		text += fmt.Sprintf("\n_%s is now disabled._", out.Result)
	}
	if err := renderer.Announce(ctx, svc.Frame(), text); err != nil {
		log.Error().Err(err).Msg("failed to announce result")
	}
}

// releaseWheel undoes the disabled Spin button of a rejected spin. A
// message made for the spin is removed; an existing one is redrawn at rest.
func releaseWheel(ctx context.Context, m Messenger, log zerolog.Logger, channelID, messageID string, created bool, frame *wheel.Frame) {
	if created {
		if err := m.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
			log.Debug().Err(err).Msg("failed to delete rejected wheel message")
		}
		return
	}
	if err := editMessage(ctx, m, channelID, messageID, renderWheel(frame, -1), wheelComponents(false)); err != nil {
		log.Debug().Err(err).Msg("failed to redraw rejected wheel message")
	}
}

func (c *RouletteCommand) handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	out, err := svc.GetOptions(ctx)
	if err != nil {
		return RespondWithError(s, i, "Failed to load the options.")
	}

	return RespondWithModal(s, i, customID(roulettePrefix, actionOptions), "Wheel options",
		discordgo.TextInput{
			CustomID:    inputOptions,
			Label:       "One option per line",
			Style:       discordgo.TextInputParagraph,
			Placeholder: "Pizza\nSushi\nTacos",
			Value:       out.Text,
			MaxLength:   modalTextLimit,
		},
	)
}

func (c *RouletteCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	out, err := svc.GetHistory(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get history")
		return RespondWithError(s, i, "Failed to load the history.")
	}

	return RespondWithEmbed(s, i, renderHistory(out.Entries, out.Statistics))
}

func (c *RouletteCommand) handleClearHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	if err := svc.ClearHistory(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to clear history")
		return RespondWithError(s, i, "Failed to clear the history.")
	}

	return RespondWithMessage(s, i, "History cleared.")
}

func (c *RouletteCommand) handleUndo(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	out, err := svc.RemoveLastResult(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to remove last result")
		return RespondWithError(s, i, "Failed to update the history.")
	}

	return RespondWithMessage(s, i, undoMessage(out.Entry))
}

func (c *RouletteCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	if err := svc.Reset(ctx); err != nil {
		if messaging.IsConcurrency(err) {
			return RespondWithEphemeralMessage(s, i, "The wheel is spinning. Reset it once the spin ends.")
		}
		c.log.Error().Err(err).Msg("failed to reset roulette")
		return RespondWithError(s, i, "Failed to reset the wheel.")
	}

	return RespondWithMessage(s, i, "The wheel was reset. Use /roulette edit to add options.")
}

func (c *RouletteCommand) handleAutoDisable(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	enabled := opts["enabled"] != nil && opts["enabled"].BoolValue()

	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	if err := svc.SetAutoDisable(ctx, &roulette.SetAutoDisableInput{Enabled: enabled}); err != nil {
		c.log.Error().Err(err).Msg("failed to set auto-disable")
		return RespondWithError(s, i, "Failed to save the setting.")
	}

	if enabled {
		return RespondWithEphemeralMessage(s, i, "Winning options are now disabled after each spin.")
	}
	return RespondWithEphemeralMessage(s, i, "Winning options stay enabled.")
}

func (c *RouletteCommand) handleToggle(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if opts["position"] == nil || opts["enabled"] == nil {
		return RespondWithError(s, i, "Position and enabled are required.")
	}
	position := int(opts["position"].IntValue())
	enabled := opts["enabled"].BoolValue()

	ctx := context.Background()
	svc, err := c.registry.Roulette(ctx, i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get roulette")
		return RespondWithError(s, i, "The wheel is not available right now.")
	}

	out, err := svc.SetOptionEnabled(ctx, &roulette.SetOptionEnabledInput{
		Index:   position - 1,
		Enabled: enabled,
	})
	if err != nil {
		if messaging.IsValidation(err) {
			return RespondWithError(s, i, fmt.Sprintf("There is no option %d.", position))
		}
		c.log.Error().Err(err).Msg("failed to toggle option")
		return RespondWithError(s, i, "Failed to save the option.")
	}

	return RespondWithEphemeralMessage(s, i, renderOptions(out.Options))
}
