package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrCompletePickupCommandIsNotConstructed = errors.New(
	"CompletePickupCommand must be created via NewCompletePickupCommand constructor",
)

// CompletePickupCommand represents the assigned agent finishing a pickup,
// optionally leaving a closing note for the requester.
type CompletePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID    kernel.UUID
	principal   account.Principal
	closingNote string

	guard guard.ConstructorGuard
}

// NewCompletePickupCommand creates a command for the given agent to complete
// the given request. The closing note may be empty.
func NewCompletePickupCommand(
	pickupID kernel.UUID,
	principal account.Principal,
	closingNote string,
) (CompletePickupCommand, error) {
	cmd := CompletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupID.Validate(),
		principal.Validate(),
	); err != nil {
		return CompletePickupCommand{}, err
	}

	cmd.pickupID = pickupID
	cmd.principal = principal
	cmd.closingNote = closingNote
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupCommandIsNotConstructed)
}

// PickupID returns the request to complete.
func (c CompletePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Principal returns the acting agent.
func (c CompletePickupCommand) Principal() account.Principal {
	return c.principal
}

// ClosingNote returns the agent's optional completion message.
func (c CompletePickupCommand) ClosingNote() string {
	return c.closingNote
}
