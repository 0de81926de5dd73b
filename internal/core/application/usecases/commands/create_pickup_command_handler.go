package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/pickup"
)

// CreatePickupCommandHandler handles the business logic for filing pickup
// requests. New requests always start in pending status with no agent.
type CreatePickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCreatePickupCommandHandler creates a handler for pickup creation.
// Requires a PickupUoWFactory for transactional persistence.
func NewCreatePickupCommandHandler(uowFactory PickupUoWFactory) CreatePickupCommandHandler {
	return CreatePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup creation command. Only requesters may file
// requests; the caller becomes the owner.
func (h CreatePickupCommandHandler) Handle(ctx context.Context, cmd CreatePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Authorize(account.Requester); err != nil {
		return err
	}

	aggregate, err := pickup.NewPickup(
		cmd.PickupID(),
		cmd.Principal().ID(),
		cmd.Items(),
		cmd.Schedule(),
		cmd.Address(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PickupRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
