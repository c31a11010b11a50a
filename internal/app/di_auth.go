package app

import (
	"fmt"

	"github.com/allisson/drinks/internal/auth/policy"
	authService "github.com/allisson/drinks/internal/auth/service"
)

// KeySetProvider returns the source of token signing keys: the identity provider's key
// set fetched on every lookup, or an in-memory cache in front of it when
// AUTH_JWKS_CACHE_ENABLED is set.
func (c *Container) KeySetProvider() authService.KeySetProvider {
	c.keySetInit.Do(func() {
		c.keySet = c.initKeySetProvider()
	})
	return c.keySet
}

// TokenVerifier returns the bearer token verifier.
func (c *Container) TokenVerifier() (authService.TokenVerifier, error) {
	var err error
	c.verifierInit.Do(func() {
		c.verifier, err = c.initTokenVerifier()
		if err != nil {
			c.initErrors["verifier"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["verifier"]; exists {
		return nil, storedErr
	}
	return c.verifier, nil
}

// RoutePolicy returns the route permission table, read from AUTH_POLICY_FILE when set.
func (c *Container) RoutePolicy() (*policy.Policy, error) {
	var err error
	c.routePolicyInit.Do(func() {
		c.routePolicy, err = policy.Load(c.config.AuthPolicyFile)
		if err != nil {
			c.initErrors["routePolicy"] = fmt.Errorf("failed to load route policy: %w", err)
		}
	})
	if storedErr, exists := c.initErrors["routePolicy"]; exists {
		return nil, storedErr
	}
	return c.routePolicy, nil
}

// initKeySetProvider creates the remote key set and, if enabled, its cache.
func (c *Container) initKeySetProvider() authService.KeySetProvider {
	c.remoteKeySet = authService.NewRemoteKeySet(authService.RemoteKeySetConfig{
		URL:     c.config.JWKSURL(),
		Timeout: c.config.AuthJWKSFetchTimeout,
		Retries: c.config.AuthJWKSFetchRetries,
		Logger:  c.Logger(),
	})

	if !c.config.AuthJWKSCacheEnabled {
		return c.remoteKeySet
	}

	return authService.NewCachedKeySet(c.remoteKeySet, authService.CachedKeySetConfig{
		TTL: c.config.AuthJWKSCacheTTL,
	})
}

// initTokenVerifier creates the token verifier with all its dependencies.
func (c *Container) initTokenVerifier() (authService.TokenVerifier, error) {
	baseVerifier := authService.NewTokenVerifier(c.KeySetProvider(), authService.TokenVerifierConfig{
		Issuer:     c.config.Issuer(),
		Audience:   c.config.AuthAudience,
		Algorithms: c.config.Algorithms(),
		Leeway:     c.config.AuthClockSkew,
	})

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token verifier: %w", err)
		}
		return authService.NewTokenVerifierWithMetrics(baseVerifier, businessMetrics), nil
	}

	return baseVerifier, nil
}
