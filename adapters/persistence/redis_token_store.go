package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) service.TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) Issue(ctx context.Context, token, value string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, "token:"+token, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis Set failed: %w", err)
	}
	return nil
}

// Consume uses GETDEL so the token is gone the moment it is read. Expired and
// already-used tokens are indistinguishable to the caller.
func (s *redisTokenStore) Consume(ctx context.Context, token string) (string, error) {
	value, err := s.rdb.GetDel(ctx, "token:"+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperror.NewNotFound("token", token)
	}
	if err != nil {
		return "", fmt.Errorf("redis GetDel failed: %w", err)
	}
	return value, nil
}
