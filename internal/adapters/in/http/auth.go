package http

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

const identityContextKey = "meddrone.identity"

// AccessClaims is the JWT payload the auth service issues. The subject
// is the user's UUID.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token on every request and
// stores the resulting identity in the request context.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, err := identityFromRequest(ctx, secret)
			if err != nil {
				return writeError(ctx, err)
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// RequireRoles rejects requests whose identity does not carry one of
// the given roles. Must run after AuthMiddleware.
func RequireRoles(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, err := IdentityFromContext(ctx)
			if err != nil {
				return writeError(ctx, err)
			}

			for _, role := range roles {
				if identity.Role() == role {
					return next(ctx)
				}
			}

			return writeError(ctx, errs.NewPermissionDeniedError("insufficient role"))
		}
	}
}

// IdentityFromContext returns the authenticated identity stored by
// AuthMiddleware.
func IdentityFromContext(ctx echo.Context) (kernel.Identity, error) {
	identity, ok := ctx.Get(identityContextKey).(kernel.Identity)
	if !ok {
		return kernel.Identity{}, errs.NewUnauthenticatedError("no identity in request context")
	}
	return identity, nil
}

func identityFromRequest(ctx echo.Context, secret []byte) (kernel.Identity, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return kernel.Identity{}, errs.NewUnauthenticatedError("missing bearer token")
	}

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewUnauthenticatedError("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return kernel.Identity{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Identity{}, errs.NewUnauthenticatedErrorWithCause("invalid subject", err)
	}

	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return kernel.Identity{}, errs.NewUnauthenticatedErrorWithCause("invalid role", err)
	}

	return kernel.NewIdentity(userID, role)
}
