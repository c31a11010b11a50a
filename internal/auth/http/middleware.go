package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
	authService "github.com/allisson/drinks/internal/auth/service"
	"github.com/allisson/drinks/internal/httputil"
)

// ExtractBearerToken returns the token from an "Authorization: Bearer <token>" header value.
// The scheme is matched case-insensitively. Any other shape yields ErrMalformedHeader.
func ExtractBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		return "", authDomain.ErrMalformedHeader.WithCause(errMissingHeader)
	case !strings.EqualFold(parts[0], "bearer"):
		return "", authDomain.ErrMalformedHeader.WithCause(errNotBearer)
	case len(parts) == 1:
		return "", authDomain.ErrMalformedHeader.WithCause(errMissingToken)
	case len(parts) > 2:
		return "", authDomain.ErrMalformedHeader.WithCause(errExtraParts)
	}
	return parts[1], nil
}

// RequirePermission gates a route behind a verified bearer token granting permission.
//
// The middleware extracts the token, verifies it and checks the permission. On success
// it stores the claim set in the request context (see GetClaims) and runs the rest of
// the chain once. On failure it aborts with the mapped error and the handler never runs.
//
// Usage:
//
//	router.POST("/drinks",
//	    RequirePermission(authDomain.PermissionPostDrinks, verifier, logger),
//	    handler.CreateHandler)
func RequirePermission(
	permission authDomain.Permission,
	verifier authService.TokenVerifier,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			reject(c, err, logger)
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			reject(c, err, logger)
			return
		}

		if err := authDomain.CheckPermission(permission, claims); err != nil {
			logger.Debug("authorization failed",
				slog.String("subject", claims.Subject()),
				slog.String("permission", string(permission)))
			reject(c, err, logger)
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authorization successful",
			slog.String("subject", claims.Subject()),
			slog.String("permission", string(permission)))

		c.Next()
	}
}

func reject(c *gin.Context, err error, logger *slog.Logger) {
	httputil.HandleErrorGin(c, err, logger)
	c.Abort()
}
