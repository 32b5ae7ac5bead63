package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmtrak/farmtrak-api/internal/core/domain"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

const defaultIdempotencyTTL = 24 * time.Hour

// idempotency wraps an optional IdempotencyStore. Store failures are logged
// and treated as an unseen key so creation still succeeds.
type idempotency struct {
	store  ports.IdempotencyStore
	ttl    time.Duration
	logger zerolog.Logger
}

func newIdempotency(store ports.IdempotencyStore, ttl time.Duration, logger zerolog.Logger) idempotency {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return idempotency{store: store, ttl: ttl, logger: logger}
}

func scopeFor(kind domain.ResourceKind, accountID string) string {
	return string(kind) + ":" + accountID
}

// seen returns the id a previous create with key produced, or "".
func (i idempotency) seen(ctx context.Context, scope, key string) string {
	if i.store == nil || key == "" {
		return ""
	}
	id, err := i.store.Lookup(ctx, scope, key)
	if err != nil {
		i.logger.Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed")
		return ""
	}
	return id
}

func (i idempotency) remember(ctx context.Context, scope, key, id string) {
	if i.store == nil || key == "" {
		return
	}
	if err := i.store.Remember(ctx, scope, key, id, i.ttl); err != nil {
		i.logger.Warn().Err(err).Str("scope", scope).Msg("idempotency remember failed")
	}
}
