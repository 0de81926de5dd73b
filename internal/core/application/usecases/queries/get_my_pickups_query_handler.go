package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyPickupsQueryHandler lists the caller's own pickup requests. The
// owner filter is applied in SQL; no other caller's requests can appear.
type GetMyPickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyPickupsQueryHandler creates a handler for own-request listings.
func NewGetMyPickupsQueryHandler(db *gorm.DB) GetMyPickupsQueryHandler {
	return GetMyPickupsQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetMyPickupsQueryHandler) Handle(ctx context.Context, query GetMyPickupsQuery) ([]PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+pickupColumns+`
		FROM pickups
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.Principal().ID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPickupRows(rows)
}
