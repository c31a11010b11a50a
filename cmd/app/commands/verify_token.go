package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
	authService "github.com/allisson/drinks/internal/auth/service"
)

// verifyTokenResult is the printable outcome of a token check.
type verifyTokenResult struct {
	Valid       bool     `json:"valid"`
	Subject     string   `json:"subject,omitempty"`
	Issuer      string   `json:"issuer,omitempty"`
	Audience    []string `json:"audience,omitempty"`
	ExpiresAt   string   `json:"expires_at,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Permission  string   `json:"permission,omitempty"`
	Code        string   `json:"code,omitempty"`
	Description string   `json:"description,omitempty"`
}

// RunVerifyToken verifies token against the configured identity provider and, when
// permission is set, checks that the claim set grants it. The claim set or the failure
// reason is written to writer in text or JSON format. A rejected token returns an error
// after the result is printed so the process exits non-zero.
func RunVerifyToken(
	ctx context.Context,
	verifier authService.TokenVerifier,
	logger *slog.Logger,
	writer io.Writer,
	token string,
	permission string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	fields := strings.Fields(token)
	if len(fields) > 0 && strings.EqualFold(fields[0], "bearer") {
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return errors.New("token is required")
	}
	token = fields[0]

	result := verifyTokenResult{Permission: permission}

	claims, err := verifier.Verify(ctx, token)
	if err == nil && permission != "" {
		err = authDomain.CheckPermission(authDomain.Permission(permission), claims)
	}

	if claims != nil {
		result.Subject = claims.Subject()
		result.Issuer = claims.Issuer()
		result.Audience = claims.Audience()
		if expiresAt, ok := claims.ExpiresAt(); ok {
			result.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
		}
		result.Permissions, _ = claims.Permissions()
	}

	if err != nil {
		result.Code = "unknown"
		result.Description = err.Error()
		var authErr *authDomain.AuthError
		if errors.As(err, &authErr) {
			result.Code = string(authErr.Code)
			result.Description = authErr.Description
		}
		logger.Debug("token rejected", slog.String("reason", result.Code))
	} else {
		result.Valid = true
	}

	if format == "json" {
		if err := writeJSON(writer, result); err != nil {
			return err
		}
	} else {
		outputVerifyTokenText(writer, result)
	}

	if !result.Valid {
		return fmt.Errorf("token rejected: %s", result.Code)
	}
	return nil
}

func outputVerifyTokenText(writer io.Writer, result verifyTokenResult) {
	if !result.Valid {
		_, _ = fmt.Fprintln(writer, "Token rejected")
		_, _ = fmt.Fprintf(writer, "  Reason:      %s\n", result.Code)
		_, _ = fmt.Fprintf(writer, "  Description: %s\n", result.Description)
		return
	}

	_, _ = fmt.Fprintln(writer, "Token is valid")
	_, _ = fmt.Fprintf(writer, "  Subject:     %s\n", result.Subject)
	_, _ = fmt.Fprintf(writer, "  Issuer:      %s\n", result.Issuer)
	_, _ = fmt.Fprintf(writer, "  Audience:    %s\n", strings.Join(result.Audience, ", "))
	if result.ExpiresAt != "" {
		_, _ = fmt.Fprintf(writer, "  Expires At:  %s\n", result.ExpiresAt)
	}
	_, _ = fmt.Fprintf(writer, "  Permissions: %s\n", strings.Join(result.Permissions, ", "))
	if result.Permission != "" {
		_, _ = fmt.Fprintf(writer, "  Granted:     %s\n", result.Permission)
	}
}
