package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList marks users whose outstanding access tokens must be
// rejected before their natural expiry. Entries live for the access-token
// TTL; after that the tokens are expired anyway, so the list stays small.
// Key format: revoked:<user_id>
type RevocationList struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationList creates a RevocationList. ttl should equal the
// access-token lifetime.
func NewRevocationList(client *redis.Client, ttl time.Duration) *RevocationList {
	return &RevocationList{client: client, ttl: ttl}
}

// Revoke marks all of the user's current access tokens as rejected.
func (l *RevocationList) Revoke(ctx context.Context, userID string) error {
	if err := l.client.Set(ctx, l.key(userID), "1", l.ttl).Err(); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

// IsRevoked reports whether the user's tokens have been revoked.
func (l *RevocationList) IsRevoked(ctx context.Context, userID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(userID string) string {
	return "revoked:" + userID
}
