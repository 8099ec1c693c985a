package service

import (
	"context"
	"time"
)

// AssetLocker serializes work on one asset across processes. TryLock returns
// false when another holder already owns the key.
type AssetLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}
