// Package service provides the token verification services for bearer authentication.
//
// A TokenVerifier decodes a signed bearer token, resolves the signing key from the
// identity provider's published key set through a KeySetProvider and validates the
// registered claims. Failures are reported as *domain.AuthError values so callers can
// render a stable reason code.
package service

import (
	"context"

	"github.com/go-jose/go-jose/v4"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

// KeySetProvider resolves public signing keys by key identifier.
type KeySetProvider interface {
	// Key returns the public key published under kid.
	// Returns ErrKeyNotFound when no published key matches and ErrKeySetUnavailable
	// when the key set could not be fetched.
	Key(ctx context.Context, kid string) (*jose.JSONWebKey, error)
}

// TokenVerifier validates bearer tokens issued by the configured identity provider.
type TokenVerifier interface {
	// Verify checks the token's signature, audience, issuer and expiry and returns its
	// claims unchanged.
	Verify(ctx context.Context, token string) (*authDomain.ClaimSet, error)
}
