package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient; tests run it against miniredis
type Client interface {
	redis.UniversalClient
}
