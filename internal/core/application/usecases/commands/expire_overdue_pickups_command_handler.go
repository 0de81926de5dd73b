package commands

import (
	"context"
	"errors"
	"time"

	"ewaste/internal/pkg/errs"
)

// ExpireOverduePickupsCommandHandler handles the system expiry sweep.
// Pending requests scheduled before today are cancelled on the system's
// behalf, bypassing the ownership guard but following the same
// pending -> cancelled edge as an owner cancellation.
//
// Each request is written conditionally on its pending status. A request
// claimed between the sweep's read and its write is simply skipped; the
// claim wins and the sweep moves on.
type ExpireOverduePickupsCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewExpireOverduePickupsCommandHandler creates a handler for the expiry sweep.
func NewExpireOverduePickupsCommandHandler(uowFactory PickupUoWFactory) ExpireOverduePickupsCommandHandler {
	return ExpireOverduePickupsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep command.
func (h ExpireOverduePickupsCommandHandler) Handle(ctx context.Context, cmd ExpireOverduePickupsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickupRepository()
	overdue, err := repo.GetAllOverduePending(ctx, now)
	if err != nil {
		return err
	}

	for _, aggregate := range overdue {
		loadedStatus := aggregate.Status()
		if err = aggregate.Expire(now); err != nil {
			return err
		}

		err = repo.Update(ctx, aggregate, loadedStatus)
		if errors.Is(err, errs.ErrConcurrentModification) {
			continue
		}
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
