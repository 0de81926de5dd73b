package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrGetPickupQueryIsNotConstructed = errors.New(
	"GetPickupQuery must be created via NewGetPickupQuery constructor",
)

// GetPickupQuery retrieves a single pickup request by id. Reading by id is
// restricted to the request's owner, its assigned agent, and administrators.
type GetPickupQuery struct {
	pickupID  kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetPickupQuery creates a query for the given caller to read the given
// request.
func NewGetPickupQuery(pickupID kernel.UUID, principal account.Principal) (GetPickupQuery, error) {
	if err := errors.Join(
		pickupID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetPickupQuery{}, err
	}

	return GetPickupQuery{
		pickupID:  pickupID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupQueryIsNotConstructed)
}

// PickupID returns the request to read.
func (q GetPickupQuery) PickupID() kernel.UUID {
	return q.pickupID
}

// Principal returns the reading caller.
func (q GetPickupQuery) Principal() account.Principal {
	return q.principal
}
