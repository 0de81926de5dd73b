package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates a use-case error into an HTTP response. Conflicts
// cover both state-guard violations and lost conditional updates, so a
// caller racing another agent sees the same 409 either way. Unrecognized
// errors become an opaque 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondWith(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrCredentialIsMissing),
		errors.Is(err, errs.ErrCredentialIsInvalid):
		return respondWith(ctx, http.StatusUnauthorized, err)
	case errors.Is(err, errs.ErrAccessForbidden):
		return respondWith(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondWith(ctx, http.StatusNotFound, err)
	case errors.Is(err, pickup.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		return respondWith(ctx, http.StatusConflict, err)
	default:
		slog.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func respondWith(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
