package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/pkg/guard"
)

var ErrGetMyPickupsQueryIsNotConstructed = errors.New(
	"GetMyPickupsQuery must be created via NewGetMyPickupsQuery constructor",
)

// GetMyPickupsQuery retrieves every pickup request the calling requester has
// filed, in every status.
type GetMyPickupsQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetMyPickupsQuery creates a query listing the caller's own requests.
func NewGetMyPickupsQuery(principal account.Principal) (GetMyPickupsQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetMyPickupsQuery{}, err
	}

	return GetMyPickupsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyPickupsQueryIsNotConstructed)
}

// Principal returns the listing caller.
func (q GetMyPickupsQuery) Principal() account.Principal {
	return q.principal
}
