package service

import (
	"context"
	"time"
)

// TokenStore holds short-lived opaque tokens, keyed by the token string.
// Consume is one-shot: a second call with the same token must fail.
type TokenStore interface {
	Issue(ctx context.Context, token, value string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}
