// Package http provides the bearer-token authorization gate for gin routes.
package http

import (
	"context"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

// claimsKey is a context key type for storing verified claims.
type claimsKey struct{}

// WithClaims stores a verified claim set in the context.
// This is called by RequirePermission after the token and permission checks succeed.
func WithClaims(ctx context.Context, claims *authDomain.ClaimSet) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves the verified claim set from the context.
// Returns (claims, true) if present, or (nil, false) if the route is not gated.
func GetClaims(ctx context.Context) (*authDomain.ClaimSet, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.ClaimSet)
	return claims, ok
}
