package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
)

// ClaimPickupCommandHandler handles the business logic for agents claiming
// pending pickup requests.
//
// The claim is the one operation where two callers race for the same state
// transition. The handler computes the new state in memory and persists it
// conditionally on the pending status it loaded; the repository rejects the
// write if another claim committed first, so exactly one concurrent claim
// wins and the loser's transaction leaves no trace.
type ClaimPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewClaimPickupCommandHandler creates a handler for claim operations.
func NewClaimPickupCommandHandler(uowFactory PickupUoWFactory) ClaimPickupCommandHandler {
	return ClaimPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command. Only agents may claim, and only
// pending requests can be claimed.
func (h ClaimPickupCommandHandler) Handle(ctx context.Context, cmd ClaimPickupCommand) error {
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
	if err = aggregate.Claim(cmd.Principal().ID(), time.Now().UTC()); err != nil {
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
