// Package redisstore backs the token blacklist with Redis. Entries carry a
// TTL matching the refresh window, so the store cleans itself up.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okwaroh/twende-logistics/internal/application/auth"
	"github.com/okwaroh/twende-logistics/pkg/config"
)

var _ auth.TokenBlacklist = (*Blacklist)(nil)

// Blacklist stores banned refresh-token ids and per-user invalidation
// cutoffs.
type Blacklist struct {
	rdb *redis.Client
}

// NewClient dials Redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewBlacklist builds the blacklist over an existing client.
func NewBlacklist(rdb *redis.Client) *Blacklist {
	return &Blacklist{rdb: rdb}
}

func tokenKey(jti string) string { return "ban:jti:" + jti }

func cutoffKey(userID string) string { return "ban:user:" + userID }

// BanToken marks a token id as revoked until its natural expiry.
func (b *Blacklist) BanToken(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.rdb.Set(ctx, tokenKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("ban token: %w", err)
	}
	return nil
}

// IsTokenBanned reports whether a token id has been revoked.
func (b *Blacklist) IsTokenBanned(ctx context.Context, jti string) (bool, error) {
	err := b.rdb.Get(ctx, tokenKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check token ban: %w", err)
	}
	return true, nil
}

// BanUserBefore stores a per-user cutoff: refresh tokens issued before t are
// rejected. Kept only as long as such tokens could still be alive.
func (b *Blacklist) BanUserBefore(ctx context.Context, userID string, t time.Time, ttl time.Duration) error {
	if err := b.rdb.Set(ctx, cutoffKey(userID), t.UTC().Format(time.RFC3339Nano), ttl).Err(); err != nil {
		return fmt.Errorf("ban user tokens: %w", err)
	}
	return nil
}

// UserBannedBefore returns the stored cutoff, or the zero time when none is
// set.
func (b *Blacklist) UserBannedBefore(ctx context.Context, userID string) (time.Time, error) {
	val, err := b.rdb.Get(ctx, cutoffKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get user ban cutoff: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse user ban cutoff: %w", err)
	}
	return t, nil
}
