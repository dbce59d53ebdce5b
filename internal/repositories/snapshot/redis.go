package snapshot

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-textquest/internal/redis"
)

const snapshotKeyPrefix = "snapshot:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis snapshot repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	snap := *input.Snapshot
	snap.SavedAt = r.clock.Now()

	data, err := Encode(&snap)
	if err != nil {
		return nil, err
	}

	key := snapshotKeyPrefix + input.Slot
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to save slot %s", input.Slot)
	}

	slog.DebugContext(ctx, "snapshot saved",
		"backend", "redis",
		"key", key)

	return &SaveOutput{SavedAt: snap.SavedAt}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	key := snapshotKeyPrefix + input.Slot
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, missingError(input.Slot)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to load slot %s", input.Slot)
	}

	snap, err := Decode(input.Slot, []byte(result))
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "snapshot loaded",
		"backend", "redis",
		"key", key)

	return &LoadOutput{Snapshot: snap}, nil
}
