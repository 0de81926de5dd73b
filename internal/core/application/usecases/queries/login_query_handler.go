package queries

import (
	"context"
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/ports"
	"ewaste/internal/pkg/errs"

	"gorm.io/gorm"
)

// LoginQueryHandler authenticates an email/password pair and issues a
// bearer credential embedding the account's id and role.
//
// An unknown email and a wrong password both fail with the same
// CredentialIsInvalidError so login attempts cannot probe which emails are
// registered.
type LoginQueryHandler struct {
	db            *gorm.DB
	hasher        ports.PasswordHasher
	authenticator ports.Authenticator
}

// NewLoginQueryHandler creates a handler for login operations.
func NewLoginQueryHandler(
	db *gorm.DB,
	hasher ports.PasswordHasher,
	authenticator ports.Authenticator,
) LoginQueryHandler {
	return LoginQueryHandler{
		db:            db,
		hasher:        hasher,
		authenticator: authenticator,
	}
}

// Handle executes the login attempt.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	response, passwordHash, err := findAccountByEmail(ctx, h.db, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginQueryResponse{}, errs.NewCredentialIsInvalidErrorWithCause(err)
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if err = h.hasher.Compare(passwordHash, query.Password()); err != nil {
		return LoginQueryResponse{}, err
	}

	role, err := account.RoleFromString(response.Role)
	if err != nil {
		return LoginQueryResponse{}, err
	}
	principal, err := account.NewPrincipal(response.ID, role)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	token, err := h.authenticator.IssueToken(principal)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		Token:   token,
		Account: response,
	}, nil
}
