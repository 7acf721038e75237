package dungeons

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/idgen"
	redisclient "github.com/dungeonforge/dungeon-api/internal/redis"
)

const (
	// Key pattern: dungeon:{id}
	dungeonKeyPrefix = "dungeon:"

	errIDEmpty   = "dungeon ID cannot be empty"
	errResultNil = "result cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("ID generator is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewRedisRepository creates a new Redis repository for generated dungeons
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores a composed generation result under a freshly generated ID
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument(errResultNil)
	}

	now := r.clock.Now()
	stored := &StoredDungeon{
		ID:        r.idGen.Generate(),
		Result:    input.Result,
		CreatedAt: now,
	}
	if input.TTL > 0 {
		stored.ExpiresAt = now.Add(input.TTL)
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal dungeon")
	}

	key := dungeonKeyPrefix + stored.ID
	if err := r.client.Set(ctx, key, payload, input.TTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store dungeon in Redis")
	}

	return &SaveOutput{Dungeon: stored}, nil
}

// Get retrieves a stored generation result by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := dungeonKeyPrefix + input.ID

	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("dungeon not found")
		}
		return nil, errors.Wrapf(err, "failed to get dungeon from Redis")
	}

	var stored StoredDungeon
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal dungeon")
	}

	// Redis expiry normally removes the key first; this covers clock skew
	// between writer and reader.
	if !stored.ExpiresAt.IsZero() && r.clock.Now().After(stored.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("dungeon has expired")
	}

	return &GetOutput{Dungeon: &stored}, nil
}

// Delete removes a stored generation result
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := dungeonKeyPrefix + input.ID

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete dungeon from Redis")
	}

	return &DeleteOutput{Deleted: deleted > 0}, nil
}
