package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/redis/go-redis/v9"
)

type redisLocker struct {
	rdb *redis.Client
}

func NewRedisLocker(rdb *redis.Client) service.AssetLocker {
	return &redisLocker{rdb: rdb}
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, "lock:"+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis SetNX failed: %w", err)
	}
	return ok, nil
}

func (l *redisLocker) Unlock(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("redis Del failed: %w", err)
	}
	return nil
}
