package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
)

// CancelPickupCommandHandler handles the business logic for requester
// cancellations. Only the owner may cancel, and only while the request is
// still pending; a claimed request can no longer be withdrawn.
type CancelPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCancelPickupCommandHandler creates a handler for cancellation operations.
func NewCancelPickupCommandHandler(uowFactory PickupUoWFactory) CancelPickupCommandHandler {
	return CancelPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. The write is conditional on
// the pending status the handler loaded, so a cancellation racing a claim
// cannot silently undo the assignment.
func (h CancelPickupCommandHandler) Handle(ctx context.Context, cmd CancelPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Authorize(account.Requester); err != nil {
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
	if err = aggregate.Cancel(cmd.Principal().ID(), time.Now().UTC()); err != nil {
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
