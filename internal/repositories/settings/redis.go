package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; each scope is one hash
	settingsKeyPrefix = "settings:"

	// defaultScope is used when no scope is given
	defaultScope = "default"
)

// ErrEmptyKey is returned when a key is missing from the input
var ErrEmptyKey = errors.New("key cannot be empty")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func scopeKey(scope string) string {
	if scope == "" {
		scope = defaultScope
	}
	return fmt.Sprintf("%s%s", settingsKeyPrefix, scope)
}

// Save stores a value in the scope hash
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return ErrEmptyKey
	}

	if err := r.client.HSet(ctx, scopeKey(input.Scope), input.Key, input.Value).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", input.Key, err)
	}

	return nil
}

// Load reads a value from the scope hash
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, ErrEmptyKey
	}

	value, err := r.client.HGet(ctx, scopeKey(input.Scope), input.Key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &LoadOutput{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", input.Key, err)
	}

	return &LoadOutput{
		Value: value,
		Found: true,
	}, nil
}

// Delete removes one field of the scope hash
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.Key == "" {
		return ErrEmptyKey
	}

	if err := r.client.HDel(ctx, scopeKey(input.Scope), input.Key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", input.Key, err)
	}

	return nil
}

// Clear drops the scope hash
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Del(ctx, scopeKey(input.Scope)).Err(); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	return nil
}

// LoadAll reads the whole scope hash
func (r *redisRepository) LoadAll(ctx context.Context, input *LoadAllInput) (*LoadAllOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	values, err := r.client.HGetAll(ctx, scopeKey(input.Scope)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &LoadAllOutput{
		Values: values,
	}, nil
}
