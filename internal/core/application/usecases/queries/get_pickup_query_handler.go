package queries

import (
	"context"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPickupQueryHandler retrieves a single pickup request from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPickupQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupQueryHandler creates a handler for by-id pickup reads.
// Requires a GORM database connection for query execution.
func NewGetPickupQueryHandler(db *gorm.DB) GetPickupQueryHandler {
	return GetPickupQueryHandler{db: db}
}

// Handle executes the by-id read. A request that exists but is not visible
// to the caller fails with an AccessForbiddenError, not a not-found, so the
// caller learns nothing it was not entitled to beyond the id's existence.
func (h GetPickupQueryHandler) Handle(ctx context.Context, query GetPickupQuery) (PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return PickupResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+pickupColumns+`
		FROM pickups
		WHERE id = ?
	`, query.PickupID().String()).Rows()
	if err != nil {
		return PickupResponse{}, err
	}
	defer rows.Close()

	pickups, err := scanPickupRows(rows)
	if err != nil {
		return PickupResponse{}, err
	}
	if len(pickups) == 0 {
		return PickupResponse{}, errs.NewObjectNotFoundError("pickupId", query.PickupID())
	}

	response := pickups[0]
	if !readableBy(response, query.Principal()) {
		return PickupResponse{}, errs.NewAccessForbiddenError("pickup is not visible to this principal")
	}

	return response, nil
}

// readableBy mirrors the aggregate's by-id read rule on the read model:
// owner, assigned agent, or admin.
func readableBy(response PickupResponse, principal account.Principal) bool {
	if principal.Role() == account.Admin {
		return true
	}
	if response.OwnerID.IsEqual(principal.ID()) {
		return true
	}
	return response.AgentID != nil && response.AgentID.IsEqual(principal.ID())
}
