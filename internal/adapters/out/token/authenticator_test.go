package token_test

import (
	"strings"
	"testing"
	"time"

	"ewaste/internal/adapters/out/token"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthenticator(t *testing.T, ttl time.Duration) *token.JWTAuthenticator {
	t.Helper()
	auth, err := token.NewJWTAuthenticator(testSecret, ttl)
	require.NoError(t, err)
	return auth
}

func newPrincipal(t *testing.T, role account.Role) account.Principal {
	t.Helper()
	principal, err := account.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return principal
}

func Test_NewJWTAuthenticator_InvalidInput(t *testing.T) {
	_, err := token.NewJWTAuthenticator("", time.Hour)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = token.NewJWTAuthenticator(testSecret, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_JWTAuthenticator_RoundTrip(t *testing.T) {
	auth := newAuthenticator(t, time.Hour)
	principal := newPrincipal(t, account.Agent)

	signed, err := auth.IssueToken(principal)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := auth.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, parsed.ID().IsEqual(principal.ID()))
	assert.Equal(t, account.Agent, parsed.Role())
}

func Test_JWTAuthenticator_ExpiredToken(t *testing.T) {
	auth := newAuthenticator(t, time.Millisecond)
	principal := newPrincipal(t, account.Requester)

	signed, err := auth.IssueToken(principal)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = auth.ParseToken(signed)
	assert.ErrorIs(t, err, errs.ErrCredentialIsInvalid)
}

func Test_JWTAuthenticator_WrongSecret(t *testing.T) {
	auth := newAuthenticator(t, time.Hour)
	principal := newPrincipal(t, account.Admin)

	signed, err := auth.IssueToken(principal)
	require.NoError(t, err)

	other, err := token.NewJWTAuthenticator("another-secret-entirely-32-bytes", time.Hour)
	require.NoError(t, err)

	_, err = other.ParseToken(signed)
	assert.ErrorIs(t, err, errs.ErrCredentialIsInvalid)
}

func Test_JWTAuthenticator_TamperedToken(t *testing.T) {
	auth := newAuthenticator(t, time.Hour)
	principal := newPrincipal(t, account.Requester)

	signed, err := auth.IssueToken(principal)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	tampered := strings.Join(parts, ".")

	_, err = auth.ParseToken(tampered)
	assert.ErrorIs(t, err, errs.ErrCredentialIsInvalid)
}

func Test_JWTAuthenticator_Garbage(t *testing.T) {
	auth := newAuthenticator(t, time.Hour)

	_, err := auth.ParseToken("not-a-token")
	assert.ErrorIs(t, err, errs.ErrCredentialIsInvalid)
}
