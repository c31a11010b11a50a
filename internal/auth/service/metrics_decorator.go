package service

import (
	"context"
	"time"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
	"github.com/allisson/drinks/internal/metrics"
)

// tokenVerifierWithMetrics decorates TokenVerifier with metrics instrumentation.
type tokenVerifierWithMetrics struct {
	next    TokenVerifier
	metrics metrics.BusinessMetrics
}

// NewTokenVerifierWithMetrics wraps a TokenVerifier with metrics recording.
func NewTokenVerifierWithMetrics(verifier TokenVerifier, m metrics.BusinessMetrics) TokenVerifier {
	return &tokenVerifierWithMetrics{
		next:    verifier,
		metrics: m,
	}
}

// Verify records metrics for token verification.
func (t *tokenVerifierWithMetrics) Verify(ctx context.Context, token string) (*authDomain.ClaimSet, error) {
	start := time.Now()
	claims, err := t.next.Verify(ctx, token)

	status := metrics.StatusOf(err)

	t.metrics.RecordOperation(ctx, "auth", "token_verify", status)
	t.metrics.RecordDuration(ctx, "auth", "token_verify", time.Since(start), status)

	return claims, err
}
