package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrStartPickupCommandIsNotConstructed = errors.New(
	"StartPickupCommand must be created via NewStartPickupCommand constructor",
)

// StartPickupCommand represents the assigned agent reporting that the
// pickup is underway.
type StartPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewStartPickupCommand creates a command for the given agent to start the
// given request.
func NewStartPickupCommand(pickupID kernel.UUID, principal account.Principal) (StartPickupCommand, error) {
	cmd := StartPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupID.Validate(),
		principal.Validate(),
	); err != nil {
		return StartPickupCommand{}, err
	}

	cmd.pickupID = pickupID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickupCommand) Validate() error {
	return c.guard.Validate(ErrStartPickupCommandIsNotConstructed)
}

// PickupID returns the request to start.
func (c StartPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Principal returns the acting agent.
func (c StartPickupCommand) Principal() account.Principal {
	return c.principal
}
