package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
)

// StartPickupCommandHandler handles the business logic for moving an
// assigned pickup into in-progress.
type StartPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewStartPickupCommandHandler creates a handler for start operations.
func NewStartPickupCommandHandler(uowFactory PickupUoWFactory) StartPickupCommandHandler {
	return StartPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command. Only the assigned agent may start the
// pickup, and only from assigned status.
func (h StartPickupCommandHandler) Handle(ctx context.Context, cmd StartPickupCommand) error {
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
	if err = aggregate.Start(cmd.Principal().ID(), time.Now().UTC()); err != nil {
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
