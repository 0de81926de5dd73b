package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
)

// VerifyAgentCommandHandler handles the business logic for administrator
// verification of agent profiles.
type VerifyAgentCommandHandler struct {
	uowFactory AgentProfileUoWFactory
}

// NewVerifyAgentCommandHandler creates a handler for verification operations.
func NewVerifyAgentCommandHandler(uowFactory AgentProfileUoWFactory) VerifyAgentCommandHandler {
	return VerifyAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command. Only administrators may
// verify; verifying an already verified profile is a no-op.
func (h VerifyAgentCommandHandler) Handle(ctx context.Context, cmd VerifyAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Authorize(account.Admin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AgentProfileRepository()
	profile, err := repo.Get(ctx, cmd.AgentAccountID())
	if err != nil {
		return err
	}

	profile.Verify(time.Now().UTC())

	if err = repo.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
