package auth

import (
	"context"

	"github.com/osse101/alion/internal/domain"
)

type identityKey struct{}

// WithIdentity stores the authenticated caller in the context
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the authenticated caller, if any
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}
