package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves an account by id. Callers may read their own
// account; administrators may read any.
type GetAccountQuery struct {
	accountID kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query for the given caller to read the given
// account.
func NewGetAccountQuery(accountID kernel.UUID, principal account.Principal) (GetAccountQuery, error) {
	if err := errors.Join(
		accountID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		accountID: accountID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountID returns the account to read.
func (q GetAccountQuery) AccountID() kernel.UUID {
	return q.accountID
}

// Principal returns the reading caller.
func (q GetAccountQuery) Principal() account.Principal {
	return q.principal
}
