package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
)

// CompletePickupCommandHandler handles the business logic for finishing
// pickups. Completion is permissive on the starting state: an in-progress
// pickup completes normally, and an assigned one may complete without ever
// having been started.
type CompletePickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCompletePickupCommandHandler creates a handler for completion operations.
func NewCompletePickupCommandHandler(uowFactory PickupUoWFactory) CompletePickupCommandHandler {
	return CompletePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. Only the assigned agent may
// complete the pickup; the closing note is recorded on the same write.
func (h CompletePickupCommandHandler) Handle(ctx context.Context, cmd CompletePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Authorize(account.Agent); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickupRepository()
	aggregate, err := repo.Get(ctx, cmd.PickupID())
	if err != nil {
		return err
	}

	loadedStatus := aggregate.Status()
	if err = aggregate.Complete(cmd.Principal().ID(), cmd.ClosingNote(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
