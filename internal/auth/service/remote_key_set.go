package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/go-retryablehttp"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

const maxKeySetBodySize = 1 << 20

// RemoteKeySetConfig configures how the key set document is fetched.
type RemoteKeySetConfig struct {
	URL     string
	Timeout time.Duration
	Retries int
	Logger  *slog.Logger
}

// RemoteKeySet fetches the identity provider's key set on every lookup.
type RemoteKeySet struct {
	url    string
	client *retryablehttp.Client
}

// NewRemoteKeySet creates a RemoteKeySet backed by a retrying HTTP client.
func NewRemoteKeySet(cfg RemoteKeySetConfig) *RemoteKeySet {
	client := retryablehttp.NewClient()
	client.RetryMax = max(cfg.Retries, 0)
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = nil
	if cfg.Logger != nil {
		client.Logger = cfg.Logger
	}

	return &RemoteKeySet{
		url:    cfg.URL,
		client: client,
	}
}

// Fetch downloads and decodes the key set document.
func (r *RemoteKeySet) Fetch(ctx context.Context) (*jose.JSONWebKeySet, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, authDomain.ErrKeySetUnavailable.WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, authDomain.ErrKeySetUnavailable.WithCause(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, authDomain.ErrKeySetUnavailable.WithCause(
			fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, r.url),
		)
	}

	var keySet jose.JSONWebKeySet
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxKeySetBodySize)).Decode(&keySet); err != nil {
		return nil, authDomain.ErrKeySetUnavailable.WithCause(fmt.Errorf("decode key set: %w", err))
	}

	return &keySet, nil
}

// Key fetches the key set and returns the signing key published under kid.
func (r *RemoteKeySet) Key(ctx context.Context, kid string) (*jose.JSONWebKey, error) {
	keySet, err := r.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if key := signingKey(keySet, kid); key != nil {
		return key, nil
	}
	return nil, authDomain.ErrKeyNotFound
}

// signingKey returns the first key under kid that is usable for signatures.
func signingKey(keySet *jose.JSONWebKeySet, kid string) *jose.JSONWebKey {
	for _, key := range keySet.Key(kid) {
		if key.Use == "" || key.Use == "sig" {
			return &key
		}
	}
	return nil
}

// CloseIdleConnections releases pooled connections to the key set endpoint.
func (r *RemoteKeySet) CloseIdleConnections() {
	r.client.HTTPClient.CloseIdleConnections()
}
