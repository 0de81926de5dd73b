package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrCancelPickupCommandIsNotConstructed = errors.New(
	"CancelPickupCommand must be created via NewCancelPickupCommand constructor",
)

// CancelPickupCommand represents a requester withdrawing a still-pending
// pickup request.
type CancelPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewCancelPickupCommand creates a command for the given requester to cancel
// the given request.
func NewCancelPickupCommand(pickupID kernel.UUID, principal account.Principal) (CancelPickupCommand, error) {
	cmd := CancelPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupID.Validate(),
		principal.Validate(),
	); err != nil {
		return CancelPickupCommand{}, err
	}

	cmd.pickupID = pickupID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPickupCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
}

// PickupID returns the request to cancel.
func (c CancelPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Principal returns the cancelling requester.
func (c CancelPickupCommand) Principal() account.Principal {
	return c.principal
}
