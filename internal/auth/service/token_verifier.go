package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

// TokenVerifierConfig holds the values every accepted token must match.
type TokenVerifierConfig struct {
	Issuer     string
	Audience   string
	Algorithms []string
	Leeway     time.Duration
}

type tokenVerifier struct {
	keys   KeySetProvider
	config TokenVerifierConfig
	now    func() time.Time
}

// NewTokenVerifier creates a TokenVerifier resolving signing keys through keys.
func NewTokenVerifier(keys KeySetProvider, config TokenVerifierConfig) TokenVerifier {
	if len(config.Algorithms) == 0 {
		config.Algorithms = []string{"RS256"}
	}
	return &tokenVerifier{
		keys:   keys,
		config: config,
		now:    time.Now,
	}
}

// Verify decodes token, resolves its signing key by the "kid" header and validates the
// signature and the exp, aud and iss claims.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (*authDomain.ClaimSet, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, authDomain.ErrUnparseableToken.WithCause(err)
	}

	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return nil, authDomain.ErrInvalidHeader
	}

	key, err := v.keys.Key(ctx, kid)
	if err != nil {
		var authErr *authDomain.AuthError
		if errors.As(err, &authErr) {
			return nil, err
		}
		return nil, authDomain.ErrKeySetUnavailable.WithCause(err)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods(v.config.Algorithms),
		jwt.WithAudience(v.config.Audience),
		jwt.WithIssuer(v.config.Issuer),
		// Tokens without exp never expire; reject them as invalid_claims.
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.config.Leeway),
		jwt.WithTimeFunc(v.now),
	)

	claims := jwt.MapClaims{}
	_, err = parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		public := key.Public()
		if public.Key == nil {
			return nil, fmt.Errorf("key %q has no public component", kid)
		}
		return public.Key, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}

	return authDomain.NewClaimSet(claims), nil
}

// classifyParseError maps jwt validation errors onto authentication failures.
// Expiry takes precedence over other claim errors.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return authDomain.ErrTokenExpired.WithCause(err)
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return authDomain.ErrInvalidClaims.WithCause(err)
	default:
		return authDomain.ErrUnparseableToken.WithCause(err)
	}
}
