package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/spinwheel/internal/common/clock"
	"github.com/KirkDiggler/spinwheel/internal/common/uuid"
	"github.com/KirkDiggler/spinwheel/internal/config"
	"github.com/KirkDiggler/spinwheel/internal/handlers/terminal"
	"github.com/KirkDiggler/spinwheel/internal/logging"
	"github.com/KirkDiggler/spinwheel/internal/notify"
	"github.com/KirkDiggler/spinwheel/internal/random"
	historyRepo "github.com/KirkDiggler/spinwheel/internal/repositories/history"
	settingsRepo "github.com/KirkDiggler/spinwheel/internal/repositories/settings"
	"github.com/KirkDiggler/spinwheel/internal/services/messaging"
	"github.com/KirkDiggler/spinwheel/internal/services/roulette"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/alicebob/miniredis/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/redis/go-redis/v9"
)

// scope keys the terminal wheel's persisted state
const scope = "terminal"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadTerminal()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The screen owns stdout, so logs go to a file
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := logging.New(&logging.Config{
		Level:  cfg.LogLevel,
		Output: logFile,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	// Without a Redis address the wheel keeps its state in memory
	addr := cfg.RedisAddr
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("failed to start in-memory store: %w", err)
		}
		defer mr.Close()
		addr = mr.Addr()
		logger.Info().Msg("no REDIS_ADDR set, state lives in memory")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create settings repository: %w", err)
	}

	history, err := historyRepo.NewRedis(&historyRepo.Config{
		RedisClient: redisClient,
		Limit:       cfg.Wheel.HistoryLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create history repository: %w", err)
	}

	systemClock := &clock.DefaultClock{}
	roller := random.New(&random.Config{})

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Random: roller,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	status := terminal.NewStatusLine()
	notifications, err := notify.New(&notify.Config{
		Clock:           systemClock,
		Display:         status,
		Logger:          logger,
		DefaultDuration: cfg.Timing.NotificationDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification queue: %w", err)
	}
	defer notifications.Close()

	physics := wheel.PhysicsFor(cfg.Wheel.Variant)
	wheelSvc, err := roulette.New(&roulette.Config{
		Scope:        scope,
		SettingsRepo: settings,
		HistoryRepo:  history,
		Messaging:    messagingSvc,
		Notifier:     notifications,
		Random:       roller,
		Clock:        systemClock,
		IDGenerator:  uuid.New(),
		Physics:      &physics,
		Timing: &roulette.Timing{
			FrameInterval: cfg.Timing.FrameInterval,
			SettleDelay:   cfg.Timing.SettleDelay,
			GlowDuration:  cfg.Timing.GlowDuration,
			CompleteDelay: cfg.Timing.CompleteDelay,
		},
		MaxOptions: cfg.Wheel.MaxOptions,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create roulette service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := wheelSvc.Load(loadCtx); err != nil {
		return fmt.Errorf("failed to load wheel: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	app, err := terminal.New(&terminal.Config{
		Screen:    screen,
		Roulette:  wheelSvc,
		Messaging: messagingSvc,
		Status:    status,
		Notifier:  notifications,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create terminal app: %w", err)
	}

	return app.Run(ctx)
}
