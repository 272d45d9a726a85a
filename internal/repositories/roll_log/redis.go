package rolllog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: roll_log:{entity_id}
	logKeyPrefix = "roll_log:"

	// DefaultTTL is how long a log survives without new rolls
	DefaultTTL = 24 * time.Hour
	// DefaultMaxEntries is how many rolls a log keeps
	DefaultMaxEntries = 50

	errEntityIDEmpty = "entity ID cannot be empty"
	errEntryNil      = "entry cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client     redisclient.Client
	Clock      clock.Clock
	TTL        time.Duration
	MaxEntries int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if c.MaxEntries < 0 {
		return errors.InvalidArgument("max entries cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	ttl        time.Duration
	maxEntries int
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		ttl:        ttl,
		maxEntries: maxEntries,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes the roll to the head of the log and refreshes its TTL
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}

	entry := *input.Entry
	if entry.RolledAt.IsZero() {
		entry.RolledAt = r.clock.Now()
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll")
	}

	key := r.buildKey(input.EntityID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append roll in Redis")
	}

	return &AppendOutput{Entry: &entry}, nil
}

// List returns the log newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	key := r.buildKey(input.EntityID)
	raw, err := r.client.LRange(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roll log from Redis")
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			slog.WarnContext(ctx, "skipping unreadable roll log entry",
				"entity_id", input.EntityID,
				"error", err.Error())
			continue
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{Entries: entries}, nil
}

// Clear removes the log
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	key := r.buildKey(input.EntityID)
	pipe := r.client.TxPipeline()
	count := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll log in Redis")
	}

	return &ClearOutput{RollsDeleted: int(count.Val())}, nil
}

// buildKey creates the Redis key for an entity's roll log
func (r *redisRepository) buildKey(entityID string) string {
	return logKeyPrefix + entityID
}
