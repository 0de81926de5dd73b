package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ewaste/internal/adapters/out/token"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator(t *testing.T) *token.JWTAuthenticator {
	t.Helper()
	auth, err := token.NewJWTAuthenticator("test-secret-test-secret-32-bytes", time.Hour)
	require.NoError(t, err)
	return auth
}

func invokeMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, account.Principal, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var (
		seen    account.Principal
		reached bool
	)
	next := func(ctx echo.Context) error {
		var err error
		seen, err = principalFrom(ctx)
		require.NoError(t, err)
		reached = true
		return ctx.NoContent(http.StatusOK)
	}

	handler := AuthMiddleware(newTestAuthenticator(t))(next)
	require.NoError(t, handler(ctx))

	return rec, seen, reached
}

func Test_AuthMiddleware_ValidToken(t *testing.T) {
	principal, err := account.NewPrincipal(kernel.NewUUID(), account.Agent)
	require.NoError(t, err)

	signed, err := newTestAuthenticator(t).IssueToken(principal)
	require.NoError(t, err)

	rec, seen, reached := invokeMiddleware(t, "Bearer "+signed)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.ID().IsEqual(principal.ID()))
	assert.Equal(t, account.Agent, seen.Role())
}

func Test_AuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, reached := invokeMiddleware(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_AuthMiddleware_NotBearer(t *testing.T) {
	rec, _, reached := invokeMiddleware(t, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_AuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, reached := invokeMiddleware(t, "Bearer not-a-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_RespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid value", errs.NewValueIsInvalidError("quantity"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("street"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("rating", 9, 1, 5), http.StatusBadRequest},
		{"missing credential", errs.ErrCredentialIsMissing, http.StatusUnauthorized},
		{"invalid credential", errs.NewCredentialIsInvalidError(), http.StatusUnauthorized},
		{"forbidden", errs.NewAccessForbiddenError("insufficient role"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("pickup", "x"), http.StatusNotFound},
		{"illegal transition", pickup.NewIllegalTransitionError(pickup.Completed, pickup.InProgress), http.StatusConflict},
		{"lost race", errs.NewConcurrentModificationError("pickup", "x"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, respondError(ctx, test.err))
			assert.Equal(t, test.wantStatus, rec.Code)
		})
	}
}
