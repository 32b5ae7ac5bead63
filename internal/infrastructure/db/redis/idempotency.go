package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

// IdempotencyStore maps Idempotency-Key headers to the id of the resource
// they created.
// Key format: idem:<kind>:<account_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) Lookup(ctx context.Context, scope, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(scope, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember keeps the first id stored for a key; later calls within ttl are no-ops.
func (s *IdempotencyStore) Remember(ctx context.Context, scope, key, resourceID string, ttl time.Duration) error {
	if err := s.client.SetNX(ctx, s.key(scope, key), resourceID, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope, key string) string {
	return fmt.Sprintf("idem:%s:%s", scope, key)
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)
