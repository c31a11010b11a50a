package domain

import (
	"net/http"

	"github.com/allisson/drinks/internal/errors"
)

// ErrorCode identifies why a request failed authentication or authorization.
type ErrorCode string

// Authentication and authorization failure codes.
const (
	CodeMalformedHeader         ErrorCode = "malformed_header"
	CodeInvalidHeader           ErrorCode = "invalid_header"
	CodeKeyNotFound             ErrorCode = "key_not_found"
	CodeTokenExpired            ErrorCode = "token_expired"
	CodeInvalidClaims           ErrorCode = "invalid_claims"
	CodeUnparseableToken        ErrorCode = "unparseable_token"
	CodePermissionsClaimMissing ErrorCode = "permissions_claim_missing"
	CodePermissionDenied        ErrorCode = "permission_denied"
	CodeKeySetUnavailable       ErrorCode = "key_set_unavailable"
)

// AuthError is a typed authentication or authorization failure. It carries the HTTP
// status the failure is rendered with and, optionally, the underlying cause.
type AuthError struct {
	Code        ErrorCode
	Status      int
	Description string
	Err         error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap exposes the generic domain error matching Status and the underlying cause.
func (e *AuthError) Unwrap() []error {
	unwrapped := make([]error, 0, 2)
	switch e.Status {
	case http.StatusForbidden:
		unwrapped = append(unwrapped, errors.ErrForbidden)
	case http.StatusServiceUnavailable:
		unwrapped = append(unwrapped, errors.ErrUnavailable)
	default:
		unwrapped = append(unwrapped, errors.ErrUnauthorized)
	}
	if e.Err != nil {
		unwrapped = append(unwrapped, e.Err)
	}
	return unwrapped
}

// Is matches any AuthError carrying the same code.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause returns a copy of e wrapping cause.
func (e *AuthError) WithCause(cause error) *AuthError {
	return &AuthError{
		Code:        e.Code,
		Status:      e.Status,
		Description: e.Description,
		Err:         cause,
	}
}

// Authentication and authorization errors.
var (
	// ErrMalformedHeader indicates the Authorization header is absent or not "Bearer <token>".
	ErrMalformedHeader = &AuthError{
		Code:        CodeMalformedHeader,
		Status:      http.StatusUnauthorized,
		Description: "authorization header is missing or malformed",
	}

	// ErrInvalidHeader indicates the token header carries no key identifier.
	ErrInvalidHeader = &AuthError{
		Code:        CodeInvalidHeader,
		Status:      http.StatusUnauthorized,
		Description: "token header has no key id",
	}

	// ErrKeyNotFound indicates no published key matches the token's key identifier.
	ErrKeyNotFound = &AuthError{
		Code:        CodeKeyNotFound,
		Status:      http.StatusUnauthorized,
		Description: "unable to find the appropriate key",
	}

	// ErrTokenExpired indicates the token's expiry claim has passed.
	ErrTokenExpired = &AuthError{
		Code:        CodeTokenExpired,
		Status:      http.StatusUnauthorized,
		Description: "token expired",
	}

	// ErrInvalidClaims indicates an audience, issuer or other registered claim mismatch.
	ErrInvalidClaims = &AuthError{
		Code:        CodeInvalidClaims,
		Status:      http.StatusUnauthorized,
		Description: "incorrect claims, check the audience and issuer",
	}

	// ErrUnparseableToken indicates the token could not be decoded or its signature is invalid.
	ErrUnparseableToken = &AuthError{
		Code:        CodeUnparseableToken,
		Status:      http.StatusUnauthorized,
		Description: "unable to parse authentication token",
	}

	// ErrPermissionsClaimMissing indicates the claim set has no permissions claim at all.
	ErrPermissionsClaimMissing = &AuthError{
		Code:        CodePermissionsClaimMissing,
		Status:      http.StatusForbidden,
		Description: "permissions claim is not in the token",
	}

	// ErrPermissionDenied indicates the required permission is not granted.
	ErrPermissionDenied = &AuthError{
		Code:        CodePermissionDenied,
		Status:      http.StatusForbidden,
		Description: "permission is not allowed",
	}

	// ErrKeySetUnavailable indicates the identity provider's key set could not be fetched.
	ErrKeySetUnavailable = &AuthError{
		Code:        CodeKeySetUnavailable,
		Status:      http.StatusServiceUnavailable,
		Description: "identity provider key set is unavailable",
	}
)
