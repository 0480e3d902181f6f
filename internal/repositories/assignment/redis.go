package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	assignmentKeyPrefix = "roleAssignments:"

	defaultScope = "default"
)

// Config holds configuration for the Redis assignment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed assignment repository
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
	return fmt.Sprintf("%s%s", assignmentKeyPrefix, scope)
}

// Save stores the assignments as one JSON document
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	assignmentsJSON, err := json.Marshal(input.Assignments)
	if err != nil {
		return fmt.Errorf("failed to marshal assignments: %w", err)
	}

	if err := r.client.Set(ctx, scopeKey(input.Scope), assignmentsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}

	return nil
}

// Get reads the stored assignments
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	assignmentsJSON, err := r.client.Get(ctx, scopeKey(input.Scope)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetOutput{Assignments: []models.Assignment{}}, nil
		}
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	var assignments []models.Assignment
	if err := json.Unmarshal([]byte(assignmentsJSON), &assignments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignments: %w", err)
	}
	if assignments == nil {
		assignments = []models.Assignment{}
	}

	return &GetOutput{
		Assignments: assignments,
	}, nil
}

// Clear deletes the stored assignments
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Del(ctx, scopeKey(input.Scope)).Err(); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}

	return nil
}
