package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	// TestAuthDomain is the identity provider domain tokens from Issuer are issued for.
	TestAuthDomain = "drinks-test.eu.auth0.com"
	// TestAudience is the audience tokens from Issuer are issued for.
	TestAudience = "drink"
	// TestKeyID is the kid of the Issuer's signing key.
	TestKeyID = "test-key-1"
)

// Issuer is an in-process identity provider. It signs RS256 tokens and publishes its
// public key set over an httptest server.
type Issuer struct {
	Key    *rsa.PrivateKey
	KeyID  string
	Server *httptest.Server

	mu      sync.Mutex
	status  int
	keySet  []byte
	fetches atomic.Int32
}

// NewIssuer creates an Issuer with a fresh 2048-bit RSA key. The server is closed
// when the test finishes.
func NewIssuer(t *testing.T) *Issuer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	issuer := &Issuer{
		Key:    key,
		KeyID:  TestKeyID,
		status: http.StatusOK,
	}
	issuer.keySet = BuildKeySet(t, &key.PublicKey, TestKeyID)
	issuer.Server = httptest.NewServer(http.HandlerFunc(issuer.serveKeySet))
	t.Cleanup(issuer.Server.Close)

	return issuer
}

func (i *Issuer) serveKeySet(w http.ResponseWriter, r *http.Request) {
	i.fetches.Add(1)

	i.mu.Lock()
	status, body := i.status, i.keySet
	i.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusOK {
		_, _ = w.Write(body)
	}
}

// JWKSURL returns the location of the published key set.
func (i *Issuer) JWKSURL() string {
	return i.Server.URL + "/.well-known/jwks.json"
}

// IssuerURL returns the "iss" value of tokens signed by Issuer.
func (i *Issuer) IssuerURL() string {
	return "https://" + TestAuthDomain + "/"
}

// Fetches returns how many times the key set was requested.
func (i *Issuer) Fetches() int {
	return int(i.fetches.Load())
}

// SetStatus makes the key set endpoint answer with status and no body.
func (i *Issuer) SetStatus(status int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.status = status
}

// Rotate publishes the current key under a new kid.
func (i *Issuer) Rotate(t *testing.T, kid string) {
	t.Helper()
	keySet := BuildKeySet(t, &i.Key.PublicKey, kid)

	i.mu.Lock()
	defer i.mu.Unlock()
	i.KeyID = kid
	i.keySet = keySet
}

// Claims returns a valid claim set granting permissions.
func (i *Issuer) Claims(permissions ...string) jwt.MapClaims {
	granted := make([]any, 0, len(permissions))
	for _, p := range permissions {
		granted = append(granted, p)
	}
	return jwt.MapClaims{
		"iss":         i.IssuerURL(),
		"sub":         "auth0|barista",
		"aud":         TestAudience,
		"iat":         time.Now().Add(-time.Minute).Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
		"permissions": granted,
	}
}

// Token signs a valid token granting permissions.
func (i *Issuer) Token(t *testing.T, permissions ...string) string {
	t.Helper()
	return i.Sign(t, i.Claims(permissions...))
}

// Sign signs claims with the Issuer's key under its current kid.
func (i *Issuer) Sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	i.mu.Lock()
	kid := i.KeyID
	i.mu.Unlock()

	return SignToken(t, i.Key, kid, claims)
}

// SignToken signs claims with RS256. An empty kid omits the header.
func SignToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

// BuildKeySet encodes pub as a JWKS document under kid.
func BuildKeySet(t *testing.T, pub *rsa.PublicKey, kid string) []byte {
	t.Helper()

	keySet := jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{
			{Key: pub, KeyID: kid, Algorithm: "RS256", Use: "sig"},
		},
	}
	data, err := json.Marshal(keySet)
	require.NoError(t, err)
	return data
}
