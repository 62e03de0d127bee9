package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRevocationTTL = 24 * time.Hour

// TokenDenylist tracks revoked session token ids in Redis.
// Key format: revoked:<token_id>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// IsRevoked reports whether the token id has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

// Revoke marks the token id revoked until ttl elapses, which should be at
// least the token's remaining lifetime.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultRevocationTTL
	}
	return d.client.Set(ctx, d.key(tokenID), "1", ttl).Err()
}

func (d *TokenDenylist) key(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}
