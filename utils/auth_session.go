// File: utils/auth_session.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const authSessionPrefix = "authSession:"

func sessionKey(role, id string) string {
	return authSessionPrefix + role + ":" + id
}

// SaveSessionToken stores the hash of an issued JWT for a subject so it can be
// checked and revoked later. TTL should match the token lifetime.
func SaveSessionToken(client *redis.Client, role, id, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, sessionKey(role, id), tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// CheckSessionToken reports whether the given token hash matches the stored session.
func CheckSessionToken(client *redis.Client, role, id, tokenHash string) (bool, error) {
	ctx := context.Background()
	stored, err := client.Get(ctx, sessionKey(role, id)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read auth session: %w", err)
	}
	return stored == tokenHash, nil
}

// RevokeSessionToken removes the stored session, invalidating outstanding tokens.
func RevokeSessionToken(client *redis.Client, role, id string) error {
	ctx := context.Background()
	return client.Del(ctx, sessionKey(role, id)).Err()
}
