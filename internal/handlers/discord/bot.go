package discord

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	components map[string]ComponentHandler
	commandIDs map[string]string // Maps command name to command ID
	registry   *Registry
	config     *Config
	log        zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the unopened Discord session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Registry hands out the per-channel services
	Registry *Registry

	Messaging messaging.Service
	Clock     clock.Clock

	// EditInterval spaces animation edits, defaults to DefaultEditInterval
	EditInterval time.Duration

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Session == nil {
		return nil, ErrNilSession
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

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		components: make(map[string]ComponentHandler),
		commandIDs: make(map[string]string),
		registry:   cfg.Registry,
		config:     cfg,
		log:        cfg.Logger.With().Str("component", "discord").Logger(),
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	rouletteCmd, err := NewRouletteCommand(&RouletteCommandConfig{
		Registry:     b.registry,
		Messaging:    b.config.Messaging,
		Clock:        b.config.Clock,
		EditInterval: b.config.EditInterval,
		Logger:       b.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create roulette command: %w", err)
	}
	if err := b.RegisterCommand(rouletteCmd); err != nil {
		return fmt.Errorf("failed to register roulette command: %w", err)
	}

	assignCmd, err := NewAssignCommand(&AssignCommandConfig{
		Registry: b.registry,
		Logger:   b.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create assign command: %w", err)
	}
	if err := b.RegisterCommand(assignCmd); err != nil {
		return fmt.Errorf("failed to register assign command: %w", err)
	}

	b.log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop cancels running animations, removes the commands and closes the
// connection
func (b *Bot) Stop() error {
	b.registry.Close()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Error().Err(err).Str("command", cmdName).Str("id", cmdID).Msg("failed to delete command")
		} else {
			b.log.Info().Str("command", cmdName).Str("id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. Commands that own
// buttons or modals are routed their component interactions as well.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		b.log.Info().Str("command", cmd.GetName()).Str("guild", b.config.GuildID).Msg("registering command for guild")
	} else {
		b.log.Info().Str("command", cmd.GetName()).Msg("registering command globally")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	if ch, ok := cmd.(ComponentHandler); ok {
		b.components[ch.Prefix()] = ch
	}

	b.log.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")
	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		id := i.MessageComponentData().CustomID
		h, ok := b.componentHandler(id)
		if !ok {
			if err := RespondWithError(s, i, "Unknown button."); err != nil {
				b.log.Error().Err(err).Msg("failed to respond")
			}
			return
		}
		if err := h.HandleComponent(s, i); err != nil {
			b.log.Error().Err(err).Str("custom_id", id).Msg("error handling component")
		}
	case discordgo.InteractionModalSubmit:
		id := i.ModalSubmitData().CustomID
		h, ok := b.componentHandler(id)
		if !ok {
			return
		}
		if err := h.HandleModal(s, i); err != nil {
			b.log.Error().Err(err).Str("custom_id", id).Msg("error handling modal")
		}
	}
}

func (b *Bot) componentHandler(id string) (ComponentHandler, bool) {
	prefix, _ := splitCustomID(id)
	h, ok := b.components[prefix]
	return h, ok
}
