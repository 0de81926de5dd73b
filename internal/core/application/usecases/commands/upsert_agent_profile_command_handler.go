package commands

import (
	"context"
	"errors"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/pkg/errs"
)

// UpsertAgentProfileCommandHandler handles the business logic for creating
// and updating agent business profiles. A first submission creates an
// unverified profile; later submissions update it in place without touching
// the verification flag.
type UpsertAgentProfileCommandHandler struct {
	uowFactory AgentProfileUoWFactory
}

// NewUpsertAgentProfileCommandHandler creates a handler for profile upserts.
func NewUpsertAgentProfileCommandHandler(uowFactory AgentProfileUoWFactory) UpsertAgentProfileCommandHandler {
	return UpsertAgentProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile upsert command. Only agents have profiles.
func (h UpsertAgentProfileCommandHandler) Handle(ctx context.Context, cmd UpsertAgentProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Authorize(account.Agent); err != nil {
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

	repo := uow.AgentProfileRepository()
	existing, err := repo.Get(ctx, cmd.Principal().ID())

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		profile, newErr := agent.NewProfile(
			cmd.Principal().ID(),
			cmd.BusinessName(),
			cmd.Services(),
			cmd.AcceptedCategories(),
			now,
		)
		if newErr != nil {
			return newErr
		}
		if err = repo.Add(ctx, profile); err != nil {
			return err
		}

	case err != nil:
		return err

	default:
		if err = existing.Update(cmd.BusinessName(), cmd.Services(), cmd.AcceptedCategories(), now); err != nil {
			return err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
