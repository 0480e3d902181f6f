package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; each scope is one list
	historyKeyPrefix = "rouletteHistory:"

	defaultScope = "default"
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Limit caps the entries per scope; zero means DefaultLimit
	Limit int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	limit  int
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	limit := cfg.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	return &redisRepository{
		client: cfg.RedisClient,
		limit:  limit,
	}, nil
}

func scopeKey(scope string) string {
	if scope == "" {
		scope = defaultScope
	}
	return fmt.Sprintf("%s%s", historyKeyPrefix, scope)
}

// AddResult pushes the entry on the head of the list and trims the tail
func (r *redisRepository) AddResult(ctx context.Context, input *AddResultInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	key := scopeKey(input.Scope)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, entryJSON)
	pipe.LTrim(ctx, key, 0, int64(r.limit-1))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}

	return nil
}

// List reads the list head to tail
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	raw, err := r.client.LRange(ctx, scopeKey(input.Scope), 0, int64(r.limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*models.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{
		Entries: entries,
	}, nil
}

// Clear deletes the list
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Del(ctx, scopeKey(input.Scope)).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}

// Set rewrites the list in one transaction
func (r *redisRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	entries := input.Entries
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}

	values := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		entryJSON, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal history entry: %w", err)
		}
		values = append(values, entryJSON)
	}

	key := scopeKey(input.Scope)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		pipe.RPush(ctx, key, values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set history: %w", err)
	}

	return nil
}
