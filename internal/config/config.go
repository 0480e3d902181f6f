// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrInvalidTiming     ConfigError = "animation timings must be positive"
	ErrInvalidMaxOptions ConfigError = "max options must allow at least two options"
	ErrInvalidVariant    ConfigError = "wheel variant must be standard or fast"
)

// Timing holds the animation delays shared by both front ends
type Timing struct {
	FrameInterval        time.Duration `env:"FRAME_INTERVAL" envDefault:"16ms"`
	SettleDelay          time.Duration `env:"SETTLE_DELAY" envDefault:"300ms"`
	GlowDuration         time.Duration `env:"GLOW_DURATION" envDefault:"600ms"`
	CompleteDelay        time.Duration `env:"COMPLETE_DELAY" envDefault:"100ms"`
	RevealItemDelay      time.Duration `env:"REVEAL_ITEM_DELAY" envDefault:"800ms"`
	RevealGapDelay       time.Duration `env:"REVEAL_GAP_DELAY" envDefault:"200ms"`
	NotificationDuration time.Duration `env:"NOTIFICATION_DURATION" envDefault:"3s"`
}

// Validate checks every delay is usable
func (t *Timing) Validate() error {
	for _, d := range []time.Duration{
		t.FrameInterval,
		t.SettleDelay,
		t.GlowDuration,
		t.CompleteDelay,
		t.RevealItemDelay,
		t.RevealGapDelay,
		t.NotificationDuration,
	} {
		if d <= 0 {
			return ErrInvalidTiming
		}
	}
	return nil
}

// Wheel holds the roulette settings
type Wheel struct {
	// Variant selects the spin physics: "standard" or "fast"
	Variant string `env:"WHEEL_VARIANT" envDefault:"standard"`

	// MaxOptions caps the number of enabled options on the wheel
	MaxOptions int `env:"WHEEL_MAX_OPTIONS" envDefault:"100"`

	// HistoryLimit caps the stored spin results
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"20"`
}

// Validate checks the wheel settings
func (w *Wheel) Validate() error {
	if w.Variant != "standard" && w.Variant != "fast" {
		return ErrInvalidVariant
	}
	if w.MaxOptions < 2 {
		return ErrInvalidMaxOptions
	}
	return nil
}

// Bot configures the Discord bot
type Bot struct {
	Token         string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	Wheel  Wheel
	Timing Timing
}

// Terminal configures the terminal front end
type Terminal struct {
	// RedisAddr is optional; when empty settings and history live in memory
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// LogFile receives logs while the terminal owns the screen; empty
	// discards them
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Wheel  Wheel
	Timing Timing
}

// LoadBot reads the bot configuration
func LoadBot(dotenv ...string) (*Bot, error) {
	cfg := &Bot{}
	if err := load(cfg, dotenv); err != nil {
		return nil, err
	}
	if err := cfg.Wheel.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Timing.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTerminal reads the terminal configuration
func LoadTerminal(dotenv ...string) (*Terminal, error) {
	cfg := &Terminal{}
	if err := load(cfg, dotenv); err != nil {
		return nil, err
	}
	if err := cfg.Wheel.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Timing.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// load applies the .env files, when present, then parses target. Values
// already set in the environment win over the files.
func load(target any, dotenv []string) error {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
