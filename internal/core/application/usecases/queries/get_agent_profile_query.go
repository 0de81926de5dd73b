package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrGetAgentProfileQueryIsNotConstructed = errors.New(
	"GetAgentProfileQuery must be created via NewGetAgentProfileQuery constructor",
)

// GetAgentProfileQuery retrieves a single agent's business profile. Agents
// may read their own profile; administrators may read any.
type GetAgentProfileQuery struct {
	accountID kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAgentProfileQuery creates a query for the profile belonging to the
// given account.
func NewGetAgentProfileQuery(
	accountID kernel.UUID,
	principal account.Principal,
) (GetAgentProfileQuery, error) {
	if err := errors.Join(
		accountID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetAgentProfileQuery{}, err
	}

	return GetAgentProfileQuery{
		accountID: accountID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentProfileQueryIsNotConstructed)
}

// AccountID returns the profile owner's account id.
func (q GetAgentProfileQuery) AccountID() kernel.UUID {
	return q.accountID
}

// Principal returns the reading caller.
func (q GetAgentProfileQuery) Principal() account.Principal {
	return q.principal
}
