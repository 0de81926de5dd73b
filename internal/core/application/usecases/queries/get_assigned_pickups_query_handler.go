package queries

import (
	"context"

	"ewaste/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// GetAssignedPickupsQueryHandler lists the pickup requests assigned to the
// calling agent. The agent filter is applied in SQL.
type GetAssignedPickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedPickupsQueryHandler creates a handler for assigned-work listings.
func NewGetAssignedPickupsQueryHandler(db *gorm.DB) GetAssignedPickupsQueryHandler {
	return GetAssignedPickupsQueryHandler{db: db}
}

// Handle executes the listing, most recently updated first.
func (h GetAssignedPickupsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedPickupsQuery,
) ([]PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().Authorize(account.Agent); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+pickupColumns+`
		FROM pickups
		WHERE agent_id = ?
		ORDER BY updated_at DESC
	`, query.Principal().ID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPickupRows(rows)
}
