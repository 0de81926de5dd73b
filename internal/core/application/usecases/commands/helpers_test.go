package commands_test

import (
	"testing"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/require"
)

func mustPrincipal(t *testing.T, id kernel.UUID, role account.Role) account.Principal {
	t.Helper()
	principal, err := account.NewPrincipal(id, role)
	require.NoError(t, err)
	return principal
}

func newPendingPickup(t *testing.T, ownerID kernel.UUID) *pickup.Pickup {
	t.Helper()

	item, err := pickup.NewItem(pickup.Computer, 2, "office desktops")
	require.NoError(t, err)
	schedule, err := pickup.NewSchedule(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "09:00-12:00")
	require.NoError(t, err)
	address, err := pickup.NewAddress("12 Green St", "Springfield", "IL", "62704", "USA")
	require.NoError(t, err)

	p, err := pickup.NewPickup(kernel.NewUUID(), ownerID, []pickup.Item{item}, schedule, address, time.Now().UTC())
	require.NoError(t, err)
	return p
}
