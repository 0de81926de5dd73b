package http

import (
	"strings"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/ports"
	"ewaste/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// AuthMiddleware verifies the Authorization header on every request in its
// group and stores the authenticated principal in the echo context.
func AuthMiddleware(authenticator ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return respondError(ctx, errs.ErrCredentialIsMissing)
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return respondError(ctx, errs.ErrCredentialIsMissing)
			}

			principal, err := authenticator.ParseToken(token)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom recovers the principal stored by AuthMiddleware.
func principalFrom(ctx echo.Context) (account.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(account.Principal)
	if !ok {
		return account.Principal{}, errs.ErrCredentialIsMissing
	}
	return principal, nil
}
