package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/pkg/guard"
)

var ErrGetAssignedPickupsQueryIsNotConstructed = errors.New(
	"GetAssignedPickupsQuery must be created via NewGetAssignedPickupsQuery constructor",
)

// GetAssignedPickupsQuery retrieves every pickup request assigned to the
// calling agent, whatever its current status.
type GetAssignedPickupsQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAssignedPickupsQuery creates a query listing the caller's assigned work.
func NewGetAssignedPickupsQuery(principal account.Principal) (GetAssignedPickupsQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetAssignedPickupsQuery{}, err
	}

	return GetAssignedPickupsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedPickupsQueryIsNotConstructed)
}

// Principal returns the listing agent.
func (q GetAssignedPickupsQuery) Principal() account.Principal {
	return q.principal
}
