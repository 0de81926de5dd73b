package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
)

// SubmitFeedbackCommandHandler handles the business logic for rating
// completed pickups. Feedback is not a status change: the request stays
// completed and the write is conditional on that status.
type SubmitFeedbackCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback operations.
func NewSubmitFeedbackCommandHandler(uowFactory PickupUoWFactory) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback command. Only the owner may rate, and only
// once the pickup is completed.
func (h SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
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
	if err = aggregate.SubmitFeedback(cmd.Principal().ID(), cmd.Feedback(), time.Now().UTC()); err != nil {
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
