package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationChecker reports whether a token ID has been revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenRevoker marks a token ID as revoked until its expiry. The auth handler
// treats a nil TokenRevoker as "no revocation backend configured".
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

const revocationKeyPrefix = "auth:revoked:"

// RevocationStore tracks revoked token IDs in Redis. Entries expire with the
// token itself, so the set never needs explicit cleanup.
type RevocationStore struct {
	rdb *redis.Client
}

// NewRevocationStore creates a Redis-backed revocation store.
func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{rdb: rdb}
}

// Revoke marks a token ID as revoked until its expiry time.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired
	}
	return s.rdb.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token ID is in the revocation set.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
