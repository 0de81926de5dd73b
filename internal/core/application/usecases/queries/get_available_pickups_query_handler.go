package queries

import (
	"context"

	"ewaste/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// GetAvailablePickupsQueryHandler lists all pending pickup requests for
// agents looking for work.
type GetAvailablePickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePickupsQueryHandler creates a handler for the pending board.
func NewGetAvailablePickupsQueryHandler(db *gorm.DB) GetAvailablePickupsQueryHandler {
	return GetAvailablePickupsQueryHandler{db: db}
}

// Handle executes the listing, oldest first so long-waiting requests are
// seen first. Only agents may browse the board.
func (h GetAvailablePickupsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePickupsQuery,
) ([]PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().Authorize(account.Agent); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + pickupColumns + `
		FROM pickups
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPickupRows(rows)
}
