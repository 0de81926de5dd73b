package account_test

import (
	"testing"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("creates valid account", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewAccount(id, "Rita", "rita@example.com", "hashed-secret", account.Requester, "555-0101", now)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "Rita", a.Name())
		assert.Equal(t, "rita@example.com", a.Email())
		assert.Equal(t, account.Requester, a.Role())
		assert.Equal(t, "555-0101", a.Phone())
		assert.Equal(t, now, a.CreatedAt())
		assert.Equal(t, now, a.UpdatedAt())
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), "Rita", "Rita@Example.COM", "h", account.Requester, "", now)

		require.NoError(t, err)
		assert.Equal(t, "rita@example.com", a.Email())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "  ", "rita@example.com", "h", account.Requester, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "Rita", "not-an-email", "h", account.Requester, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails with empty password hash", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "Rita", "rita@example.com", "", account.Requester, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with invalid role", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "Rita", "rita@example.com", "h", account.UnknownRole, "", now)

		require.Error(t, err)
	})
}

func TestAccount_Principal(t *testing.T) {
	now := time.Now().UTC()
	a, err := account.NewAccount(kernel.NewUUID(), "Ann", "ann@example.com", "h", account.Agent, "", now)
	require.NoError(t, err)

	p, err := a.Principal()

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(a.ID()))
	assert.Equal(t, account.Agent, p.Role())
}

func TestAccount_UpdateProfile(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	a, err := account.NewAccount(kernel.NewUUID(), "Ann", "ann@example.com", "h", account.Agent, "555-1", created)
	require.NoError(t, err)

	t.Run("updates mutable fields and refreshes updatedAt", func(t *testing.T) {
		require.NoError(t, a.UpdateProfile("Anna", "555-2", later))

		assert.Equal(t, "Anna", a.Name())
		assert.Equal(t, "555-2", a.Phone())
		assert.Equal(t, created, a.CreatedAt())
		assert.Equal(t, later, a.UpdatedAt())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		require.ErrorIs(t, a.UpdateProfile("", "555-3", later), errs.ErrValueIsRequired)
	})
}

func TestRestoreAccount(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.AddDate(0, 1, 0)

	a, err := account.RestoreAccount(kernel.NewUUID(), "Ann", "ann@example.com", "h", account.Admin, "", created, updated)

	require.NoError(t, err)
	assert.Equal(t, created, a.CreatedAt())
	assert.Equal(t, updated, a.UpdatedAt())
}
