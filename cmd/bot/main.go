package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/common/uuid"
	"github.com/KirkDiggler/spinwheel/internal/config"
	"github.com/KirkDiggler/spinwheel/internal/handlers/discord"
	"github.com/KirkDiggler/spinwheel/internal/logging"
	"github.com/KirkDiggler/spinwheel/internal/notify"
	"github.com/KirkDiggler/spinwheel/internal/random"
	assignmentRepo "github.com/KirkDiggler/spinwheel/internal/repositories/assignment"
	historyRepo "github.com/KirkDiggler/spinwheel/internal/repositories/history"
	settingsRepo "github.com/KirkDiggler/spinwheel/internal/repositories/settings"
	"github.com/KirkDiggler/spinwheel/internal/services/assignment"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/KirkDiggler/spinwheel/internal/services/roulette"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger, err := logging.New(&logging.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create logger")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
	}

	// Initialize repositories
	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create settings repository")
	}

	history, err := historyRepo.NewRedis(&historyRepo.Config{
		RedisClient: redisClient,
		Limit:       cfg.Wheel.HistoryLimit,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create history repository")
	}

	assignments, err := assignmentRepo.NewRedis(&assignmentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create assignment repository")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Discord session")
	}

	systemClock := &clock.DefaultClock{}
	roller := random.New(&random.Config{})

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Random: roller,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create messaging service")
	}

	// Notifications are posted to the channel they were raised in
	display, err := discord.NewDisplay(&discord.DisplayConfig{
		Messenger: session,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create notification display")
	}

	notifications, err := notify.New(&notify.Config{
		Clock:           systemClock,
		Display:         display,
		Logger:          logger,
		DefaultDuration: cfg.Timing.NotificationDuration,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create notification queue")
	}
	defer notifications.Close()

	physics := wheel.PhysicsFor(cfg.Wheel.Variant)
	rouletteTiming := &roulette.Timing{
		FrameInterval: cfg.Timing.FrameInterval,
		SettleDelay:   cfg.Timing.SettleDelay,
		GlowDuration:  cfg.Timing.GlowDuration,
		CompleteDelay: cfg.Timing.CompleteDelay,
	}
	assignmentTiming := &assignment.Timing{
		SettleDelay:   cfg.Timing.SettleDelay,
		CompleteDelay: cfg.Timing.CompleteDelay,
		ItemDelay:     cfg.Timing.RevealItemDelay,
		GapDelay:      cfg.Timing.RevealGapDelay,
	}

	registry, err := discord.NewRegistry(&discord.RegistryConfig{
		NewRoulette: func(channelID string) (roulette.Service, error) {
			svc, err := roulette.New(&roulette.Config{
				Scope:        channelID,
				SettingsRepo: settings,
				HistoryRepo:  history,
				Messaging:    messagingSvc,
				Notifier:     notifications,
				Random:       roller,
				Clock:        systemClock,
				IDGenerator:  uuid.New(),
				Physics:      &physics,
				Timing:       rouletteTiming,
				MaxOptions:   cfg.Wheel.MaxOptions,
				Logger:       logger.With().Str("channel", channelID).Logger(),
			})
			if err != nil {
				return nil, err
			}
			return svc, nil
		},
		NewAssignment: func(channelID string) (assignment.Service, error) {
			svc, err := assignment.New(&assignment.Config{
				Scope:          channelID,
				SettingsRepo:   settings,
				AssignmentRepo: assignments,
				Messaging:      messagingSvc,
				Notifier:       notifications,
				Random:         roller,
				Clock:          systemClock,
				Timing:         assignmentTiming,
				Logger:         logger.With().Str("channel", channelID).Logger(),
			})
			if err != nil {
				return nil, err
			}
			return svc, nil
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create service registry")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Registry:      registry,
		Messaging:     messagingSvc,
		Clock:         systemClock,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("Error stopping bot")
	}

	logger.Info().Msg("Bot has been shut down")
}
