package queries

import (
	"context"

	"ewaste/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetVerifiedAgentsQueryHandler lists the verified agent directory from the
// database. The services and accepted_categories columns are postgres text
// arrays scanned through pq.
type GetVerifiedAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetVerifiedAgentsQueryHandler creates a handler for the agent directory.
func NewGetVerifiedAgentsQueryHandler(db *gorm.DB) GetVerifiedAgentsQueryHandler {
	return GetVerifiedAgentsQueryHandler{db: db}
}

// Handle executes the directory listing, ordered by business name.
func (h GetVerifiedAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetVerifiedAgentsQuery,
) ([]AgentProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			account_id,
			business_name,
			services,
			accepted_categories,
			verified,
			updated_at
		FROM agent_profiles
		WHERE verified = TRUE
		ORDER BY business_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]AgentProfileResponse, 0)

	for rows.Next() {
		var (
			response  AgentProfileResponse
			accountID uuid.UUID
			services  pq.StringArray
			accepted  pq.StringArray
		)

		err = rows.Scan(
			&accountID,
			&response.BusinessName,
			&services,
			&accepted,
			&response.Verified,
			&response.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.AccountID, err = kernel.UUIDFromBytes(accountID[:]); err != nil {
			return nil, err
		}
		response.Services = services
		response.AcceptedCategories = accepted

		profiles = append(profiles, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
