package commands

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/ports"
)

// RegisterAccountCommandHandler handles the business logic for account
// registration. The plaintext password is hashed through the PasswordHasher
// port before the account aggregate is built, so neither the domain nor
// storage ever holds plaintext credentials.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for registration
// operations.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command. Email uniqueness is enforced
// by storage; a duplicate registration fails on the Add.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Name(),
		cmd.Email(),
		passwordHash,
		cmd.Role(),
		cmd.Phone(),
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

	if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
