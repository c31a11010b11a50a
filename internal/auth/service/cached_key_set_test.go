package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
	"github.com/allisson/drinks/internal/auth/service/mocks"
)

func buildKeySet(t *testing.T, kids ...string) *jose.JSONWebKeySet {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keySet := &jose.JSONWebKeySet{}
	for _, kid := range kids {
		keySet.Keys = append(keySet.Keys, jose.JSONWebKey{
			Key:       &key.PublicKey,
			KeyID:     kid,
			Algorithm: "RS256",
			Use:       "sig",
		})
	}
	return keySet
}

func TestCachedKeySet_ServesFromCache(t *testing.T) {
	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(buildKeySet(t, "kid-1"), nil).Once()

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute})

	for range 5 {
		key, err := keys.Key(context.Background(), "kid-1")
		require.NoError(t, err)
		assert.Equal(t, "kid-1", key.KeyID)
	}
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestCachedKeySet_UnknownKidRefreshes(t *testing.T) {
	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(buildKeySet(t, "kid-1"), nil).Once()
	fetcher.On("Fetch", mock.Anything).Return(buildKeySet(t, "kid-1", "kid-2"), nil).Once()

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute, MinRefreshInterval: time.Second})
	now := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	keys.now = func() time.Time { return now }

	_, err := keys.Key(context.Background(), "kid-1")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	key, err := keys.Key(context.Background(), "kid-2")
	require.NoError(t, err)
	assert.Equal(t, "kid-2", key.KeyID)
	fetcher.AssertExpectations(t)
}

func TestCachedKeySet_MinRefreshInterval(t *testing.T) {
	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(buildKeySet(t, "kid-1"), nil).Once()

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute, MinRefreshInterval: time.Minute})
	now := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	keys.now = func() time.Time { return now }

	_, err := keys.Key(context.Background(), "kid-1")
	require.NoError(t, err)

	now = now.Add(time.Second)
	key, err := keys.Key(context.Background(), "bogus")
	assert.Nil(t, key)
	assert.ErrorIs(t, err, authDomain.ErrKeyNotFound)
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestCachedKeySet_ExpiredEntriesAreRefetched(t *testing.T) {
	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(buildKeySet(t, "kid-1"), nil).Twice()

	keys := NewCachedKeySet(
		fetcher,
		CachedKeySetConfig{TTL: 50 * time.Millisecond, MinRefreshInterval: time.Millisecond},
	)

	_, err := keys.Key(context.Background(), "kid-1")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = keys.Key(context.Background(), "kid-1")
	require.NoError(t, err)
	fetcher.AssertNumberOfCalls(t, "Fetch", 2)
}

func TestCachedKeySet_SkipsEncryptionKeys(t *testing.T) {
	keySet := buildKeySet(t, "kid-enc")
	keySet.Keys[0].Use = "enc"

	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(keySet, nil).Once()

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute})
	_, err := keys.Key(context.Background(), "kid-enc")
	assert.ErrorIs(t, err, authDomain.ErrKeyNotFound)
}

func TestCachedKeySet_FetchError(t *testing.T) {
	fetchErr := authDomain.ErrKeySetUnavailable.WithCause(errors.New("connection refused"))

	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).Return(nil, fetchErr).Once()

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute})
	_, err := keys.Key(context.Background(), "kid-1")
	assert.ErrorIs(t, err, authDomain.ErrKeySetUnavailable)
}

func TestCachedKeySet_ConcurrentMissesShareOneFetch(t *testing.T) {
	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).
		Return(buildKeySet(t, "kid-1"), nil).
		After(50 * time.Millisecond)

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := keys.Key(context.Background(), "kid-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestCachedKeySet_CallerCancellation(t *testing.T) {
	fetcher := &mocks.MockKeySetFetcher{}
	fetcher.On("Fetch", mock.Anything).
		Return(buildKeySet(t, "kid-1"), nil).
		After(200 * time.Millisecond)

	keys := NewCachedKeySet(fetcher, CachedKeySetConfig{TTL: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := keys.Key(ctx, "kid-1")
	assert.ErrorIs(t, err, authDomain.ErrKeySetUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The shared fetch still completes and populates the cache.
	assert.Eventually(t, func() bool {
		_, err := keys.Key(context.Background(), "kid-1")
		return err == nil
	}, time.Second, 20*time.Millisecond)
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}
