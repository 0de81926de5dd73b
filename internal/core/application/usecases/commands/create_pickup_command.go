package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

var ErrCreatePickupCommandIsNotConstructed = errors.New(
	"CreatePickupCommand must be created via NewCreatePickupCommand constructor",
)

// CreatePickupCommand represents a requester filing a new pickup request.
// The item lines, schedule, and address arrive as already-constructed value
// objects; the command checks they were built through their constructors.
//
// Example:
//
//	cmd, err := NewCreatePickupCommand(kernel.NewUUID(), principal, items, schedule, address)
//	if err != nil {
//	    return fmt.Errorf("invalid pickup data: %w", err)
//	}
//	handler := NewCreatePickupCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type CreatePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	principal account.Principal
	items     []pickup.Item
	schedule  pickup.Schedule
	address   pickup.Address

	guard guard.ConstructorGuard
}

// NewCreatePickupCommand creates a command to file a new pickup request.
func NewCreatePickupCommand(
	pickupID kernel.UUID,
	principal account.Principal,
	items []pickup.Item,
	schedule pickup.Schedule,
	address pickup.Address,
) (CreatePickupCommand, error) {
	cmd := CreatePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setPrincipal(principal),
		cmd.setItems(items),
		cmd.setSchedule(schedule),
		cmd.setAddress(address),
	); err != nil {
		return CreatePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupCommandIsNotConstructed)
}

// PickupID returns the unique identifier for the new request.
func (c CreatePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Principal returns the caller filing the request.
func (c CreatePickupCommand) Principal() account.Principal {
	return c.principal
}

// Items returns the e-waste lines to be collected.
func (c CreatePickupCommand) Items() []pickup.Item {
	return c.items
}

// Schedule returns the requested collection slot.
func (c CreatePickupCommand) Schedule() pickup.Schedule {
	return c.schedule
}

// Address returns the collection location.
func (c CreatePickupCommand) Address() pickup.Address {
	return c.address
}

func (c *CreatePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}
	c.pickupID = pickupID
	return nil
}

func (c *CreatePickupCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *CreatePickupCommand) setItems(items []pickup.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreatePickupCommand) setSchedule(schedule pickup.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	c.schedule = schedule
	return nil
}

func (c *CreatePickupCommand) setAddress(address pickup.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
