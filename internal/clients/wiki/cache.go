package wiki

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	cacheKeyPrefix = "wiki_link:"

	// DefaultCacheTTL is how long an answer is reused
	DefaultCacheTTL = 24 * time.Hour

	cachedExists  = "1"
	cachedMissing = "0"
)

// CacheConfig configures the Redis-backed checker
type CacheConfig struct {
	Prober Prober
	Client redisclient.Client
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *CacheConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Prober == nil {
		vb.RequiredField("Prober")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}
	return vb.Build()
}

// CachedChecker remembers definite answers in Redis. Failed checks are not
// cached so a flaky network does not hide links for a day.
type CachedChecker struct {
	prober Prober
	client redisclient.Client
	ttl    time.Duration
}

// NewCachedChecker wraps a prober with a Redis cache
func NewCachedChecker(cfg *CacheConfig) (*CachedChecker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &CachedChecker{prober: cfg.Prober, client: cfg.Client, ttl: ttl}, nil
}

var _ Checker = (*CachedChecker)(nil)

// Exists implements Checker
func (c *CachedChecker) Exists(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}

	key := cacheKeyPrefix + url
	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached == cachedExists
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "wiki cache read failed", "url", url, "error", err.Error())
	}

	exists, err := c.prober.Check(ctx, url)
	if err != nil {
		slog.DebugContext(ctx, "wiki check failed", "url", url, "error", err.Error())
		return false
	}

	value := cachedMissing
	if exists {
		value = cachedExists
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "wiki cache write failed", "url", url, "error", err.Error())
	}

	return exists
}
