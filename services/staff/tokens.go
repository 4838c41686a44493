package staff

import (
	"context"
	"time"

	"stayflow/utils"

	"github.com/go-redis/redis/v8"
)

// TokenRevoker tracks tokens invalidated before their natural expiry,
// so logout takes effect immediately instead of waiting for exp.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const revokedKeyPrefix = "auth:revoked:"

// RedisTokenRevoker keeps SHA-256 hashes of revoked tokens in Redis.
// Raw tokens never touch the store; entries expire with the token.
type RedisTokenRevoker struct {
	Client *redis.Client
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; keep a short tombstone anyway.
		ttl = time.Minute
	}
	return r.Client.Set(ctx, revokedKeyPrefix+utils.HashToken(token), "1", ttl).Err()
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.Client.Exists(ctx, revokedKeyPrefix+utils.HashToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
