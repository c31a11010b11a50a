// Package mocks provides mock implementations of the token verification services.
package mocks

import (
	"context"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

// MockTokenVerifier is a mock implementation of TokenVerifier for testing.
type MockTokenVerifier struct {
	mock.Mock
}

// Verify mocks the Verify method of TokenVerifier.
func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (*authDomain.ClaimSet, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.ClaimSet), args.Error(1)
}

// MockKeySetProvider is a mock implementation of KeySetProvider for testing.
type MockKeySetProvider struct {
	mock.Mock
}

// Key mocks the Key method of KeySetProvider.
func (m *MockKeySetProvider) Key(ctx context.Context, kid string) (*jose.JSONWebKey, error) {
	args := m.Called(ctx, kid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jose.JSONWebKey), args.Error(1)
}

// MockKeySetFetcher is a mock implementation of KeySetFetcher for testing.
type MockKeySetFetcher struct {
	mock.Mock
}

// Fetch mocks the Fetch method of KeySetFetcher.
func (m *MockKeySetFetcher) Fetch(ctx context.Context) (*jose.JSONWebKeySet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jose.JSONWebKeySet), args.Error(1)
}
