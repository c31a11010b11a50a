package service

import (
	"context"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

const (
	defaultKeyCacheSize          = 64
	defaultMinRefreshInterval    = 10 * time.Second
	keySetRefreshSingleflightKey = "jwks"
)

// KeySetFetcher downloads a complete key set document.
type KeySetFetcher interface {
	Fetch(ctx context.Context) (*jose.JSONWebKeySet, error)
}

// CachedKeySetConfig configures the in-memory key cache.
type CachedKeySetConfig struct {
	// TTL is how long a fetched key is served without refetching.
	TTL time.Duration
	// MinRefreshInterval limits how often an unknown kid may trigger a refetch.
	MinRefreshInterval time.Duration
	// Size bounds the number of cached keys.
	Size int
}

// CachedKeySet serves keys from a TTL-bounded cache and refetches the key set when a
// kid is unknown. Concurrent refetches share a single request.
type CachedKeySet struct {
	fetcher            KeySetFetcher
	keys               *expirable.LRU[string, jose.JSONWebKey]
	group              singleflight.Group
	minRefreshInterval time.Duration
	now                func() time.Time

	// lastRefresh is only written inside the singleflight call.
	lastRefresh time.Time
}

// NewCachedKeySet wraps fetcher with an expiring key cache.
func NewCachedKeySet(fetcher KeySetFetcher, cfg CachedKeySetConfig) *CachedKeySet {
	size := cfg.Size
	if size <= 0 {
		size = defaultKeyCacheSize
	}
	minRefresh := cfg.MinRefreshInterval
	if minRefresh <= 0 {
		minRefresh = defaultMinRefreshInterval
	}

	return &CachedKeySet{
		fetcher:            fetcher,
		keys:               expirable.NewLRU[string, jose.JSONWebKey](size, nil, cfg.TTL),
		minRefreshInterval: minRefresh,
		now:                time.Now,
	}
}

// Key returns the cached key for kid, refetching the key set on a miss.
func (c *CachedKeySet) Key(ctx context.Context, kid string) (*jose.JSONWebKey, error) {
	if key, ok := c.keys.Get(kid); ok {
		return &key, nil
	}

	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	if key, ok := c.keys.Get(kid); ok {
		return &key, nil
	}
	return nil, authDomain.ErrKeyNotFound
}

func (c *CachedKeySet) refresh(ctx context.Context) error {
	ch := c.group.DoChan(keySetRefreshSingleflightKey, func() (any, error) {
		now := c.now()
		if !c.lastRefresh.IsZero() && now.Sub(c.lastRefresh) < c.minRefreshInterval && c.keys.Len() > 0 {
			return nil, nil
		}

		// Shared by every waiter, so one caller's cancellation must not abort it.
		keySet, err := c.fetcher.Fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.lastRefresh = now
		for _, key := range keySet.Keys {
			if key.KeyID == "" || (key.Use != "" && key.Use != "sig") {
				continue
			}
			c.keys.Add(key.KeyID, key)
		}
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return authDomain.ErrKeySetUnavailable.WithCause(ctx.Err())
	}
}
