package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrClaimPickupCommandIsNotConstructed = errors.New(
	"ClaimPickupCommand must be created via NewClaimPickupCommand constructor",
)

// ClaimPickupCommand represents an agent claiming a pending pickup request.
// The claiming agent becomes the assigned agent; the assignment is final.
type ClaimPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewClaimPickupCommand creates a command for the given agent to claim the
// given request.
func NewClaimPickupCommand(pickupID kernel.UUID, principal account.Principal) (ClaimPickupCommand, error) {
	cmd := ClaimPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupID.Validate(),
		principal.Validate(),
	); err != nil {
		return ClaimPickupCommand{}, err
	}

	cmd.pickupID = pickupID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimPickupCommand) Validate() error {
	return c.guard.Validate(ErrClaimPickupCommandIsNotConstructed)
}

// PickupID returns the request to claim.
func (c ClaimPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Principal returns the claiming agent.
func (c ClaimPickupCommand) Principal() account.Principal {
	return c.principal
}
