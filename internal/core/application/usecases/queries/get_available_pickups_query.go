package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/pkg/guard"
)

var ErrGetAvailablePickupsQueryIsNotConstructed = errors.New(
	"GetAvailablePickupsQuery must be created via NewGetAvailablePickupsQuery constructor",
)

// GetAvailablePickupsQuery retrieves every pending pickup request. This is
// the board agents browse for work; it is unfiltered by design, so every
// agent sees every unclaimed request.
type GetAvailablePickupsQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAvailablePickupsQuery creates a query listing all pending requests.
func NewGetAvailablePickupsQuery(principal account.Principal) (GetAvailablePickupsQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetAvailablePickupsQuery{}, err
	}

	return GetAvailablePickupsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePickupsQueryIsNotConstructed)
}

// Principal returns the browsing agent.
func (q GetAvailablePickupsQuery) Principal() account.Principal {
	return q.principal
}
