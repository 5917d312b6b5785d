package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pagecache:"

// Redis is a Cache backed by a shared Redis instance, for deployments running
// more than one server process.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed cache over an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (*Entry, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, err
	}
	return &entry, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err()
}

// Clear deletes every page-cache key. Uses KEYS rather than SCAN: the cache
// holds a handful of listing pages at most.
func (r *Redis) Clear(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	err = r.client.Del(ctx, keys...).Err()
	if err == redis.Nil {
		return nil
	}
	return err
}
