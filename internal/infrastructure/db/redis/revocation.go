package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records signed-out bearer tokens so the session middleware
// can reject a stolen cookie after logout.
// Key format: revoked:<token>
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks the token as invalid for ttl (which should outlive the
// token's own expiry).
func (s *RevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), "1", ttl).Err()
}

// IsRevoked reports whether the token has been signed out.
func (s *RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(token string) string {
	return "revoked:" + token
}
