package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/spinwheel/internal/input"
	"github.com/KirkDiggler/spinwheel/internal/services/assignment"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

const (
	assignPrefix = "assign"

	actionRun    = "run"
	actionInputs = "inputs"

	inputRoles     = "roles"
	inputUsernames = "usernames"
)

// AssignCommand handles the /assign command and its buttons
type AssignCommand struct {
	BaseCommand
	registry *Registry
	log      zerolog.Logger
}

// AssignCommandConfig holds the command dependencies
type AssignCommandConfig struct {
	Registry *Registry
	Logger   zerolog.Logger
}

// NewAssignCommand creates a new assign command handler
func NewAssignCommand(cfg *AssignCommandConfig) (*AssignCommand, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	return &AssignCommand{
		BaseCommand: BaseCommand{
			Name:        "assign",
			Description: "Randomly hand out roles",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "run",
					Description: "Draw a username for every role",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit the roles and usernames",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the last assignment",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Forget the last assignment",
				},
			},
		},
		registry: cfg.Registry,
		log:      cfg.Logger.With().Str("command", "assign").Logger(),
	}, nil
}

// Prefix implements ComponentHandler
func (c *AssignCommand) Prefix() string {
	return assignPrefix
}

// Handle processes a Discord interaction for the assign command
func (c *AssignCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	switch data.Options[0].Name {
	case "run":
		return c.handleRun(s, i)
	case "edit":
		return c.handleEdit(s, i)
	case "show":
		return c.handleShow(s, i)
	case "clear":
		return c.handleClear(s, i)
	}

	return ErrUnknownSubcommand
}

// HandleComponent implements ComponentHandler
func (c *AssignCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, action := splitCustomID(i.MessageComponentData().CustomID); action == actionRun {
		return c.handleRun(s, i)
	}
	return RespondWithError(s, i, "Unknown button.")
}

// HandleModal implements ComponentHandler
func (c *AssignCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	if _, action := splitCustomID(data.CustomID); action != actionInputs {
		return RespondWithError(s, i, "Unknown form.")
	}

	svc, err := c.registry.Assignment(i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get assignment")
		return RespondWithError(s, i, "Role assignment is not available right now.")
	}

	values := modalValues(data)
	roles := input.Lines(values[inputRoles])
	usernames := input.Lines(values[inputUsernames])

	if err := svc.SaveInputs(context.Background(), &assignment.SaveInputsInput{
		Roles:     input.Join(roles),
		Usernames: input.Join(usernames),
	}); err != nil {
		c.log.Error().Err(err).Msg("failed to save inputs")
		return RespondWithError(s, i, "Failed to save the lists.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Saved %d roles and %d usernames. Use `/assign run` to draw.", len(roles), len(usernames)))
}

func (c *AssignCommand) handleRun(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	svc, err := c.registry.Assignment(i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get assignment")
		return RespondWithError(s, i, "Role assignment is not available right now.")
	}

	if svc.IsProcessing() {
		return RespondWithEphemeralMessage(s, i, "An assignment is already in progress.")
	}

	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer assign response: %w", err)
	}

	messageID := ""
	if i.Type == discordgo.InteractionMessageComponent && i.Message != nil {
		messageID = i.Message.ID
	}

	go c.play(s, i, svc, messageID)
	return nil
}

func (c *AssignCommand) play(s *discordgo.Session, i *discordgo.InteractionCreate, svc assignment.Service, messageID string) {
	ctx := context.Background()
	log := c.log.With().Str("channel", i.ChannelID).Logger()

	inputs, err := svc.LoadInputs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load inputs")
		return
	}
	total := len(input.Lines(inputs.Roles))

	created := false
	if messageID == "" {
		msg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content:    renderAssignments(nil, total, -1),
			Components: assignComponents(true),
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create assignment message")
			return
		}
		messageID = msg.ID
		created = true
	}

	presenter := newAssignmentPresenter(s, i.ChannelID, messageID, total)

	out, err := svc.Assign(ctx, &assignment.AssignInput{
		Roles:     inputs.Roles,
		Usernames: inputs.Usernames,
		Presenter: presenter,
		Target:    i.ChannelID,
		Tone:      messaging.ToneCelebration,
	})
	if err != nil {
		if messaging.IsConcurrency(err) {
			log.Warn().Msg("assignment rejected while processing")
			return
		}
		log.Debug().Err(err).Msg("assignment ended without a result")
		// the channel notification explains what went wrong
		if created {
			if err := s.ChannelMessageDelete(i.ChannelID, messageID); err != nil {
				log.Debug().Err(err).Msg("failed to delete assignment message")
			}
		}
		return
	}

	if err := presenter.Finish(ctx, out.Assignments, out.Message); err != nil {
		log.Error().Err(err).Msg("failed to show assignment result")
	}
}

func (c *AssignCommand) handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	svc, err := c.registry.Assignment(i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get assignment")
		return RespondWithError(s, i, "Role assignment is not available right now.")
	}

	inputs, err := svc.LoadInputs(context.Background())
	if err != nil {
		return RespondWithError(s, i, "Failed to load the lists.")
	}

	return RespondWithModal(s, i, customID(assignPrefix, actionInputs), "Role assignment",
		discordgo.TextInput{
			CustomID:    inputRoles,
			Label:       "Roles, one per line",
			Style:       discordgo.TextInputParagraph,
			Placeholder: "Tank\nHealer\nDPS",
			Value:       inputs.Roles,
			MaxLength:   modalTextLimit,
		},
		discordgo.TextInput{
			CustomID:    inputUsernames,
			Label:       "Usernames, one per line",
			Style:       discordgo.TextInputParagraph,
			Placeholder: "alice\nbob",
			Value:       inputs.Usernames,
			MaxLength:   modalTextLimit,
		},
	)
}

func (c *AssignCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	svc, err := c.registry.Assignment(i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get assignment")
		return RespondWithError(s, i, "Role assignment is not available right now.")
	}

	out, err := svc.GetAssignments(context.Background())
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get assignments")
		return RespondWithError(s, i, "Failed to load the last assignment.")
	}

	if len(out.Assignments) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nothing assigned yet. Use `/assign run`.")
	}

	return RespondWithMessage(s, i, renderAssignments(out.Assignments, len(out.Assignments), -1))
}

func (c *AssignCommand) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	svc, err := c.registry.Assignment(i.ChannelID)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to get assignment")
		return RespondWithError(s, i, "Role assignment is not available right now.")
	}

	if err := svc.ClearResults(context.Background()); err != nil {
		c.log.Error().Err(err).Msg("failed to clear assignments")
		return RespondWithError(s, i, "Failed to clear the assignment.")
	}

	return RespondWithMessage(s, i, "Assignment cleared.")
}
