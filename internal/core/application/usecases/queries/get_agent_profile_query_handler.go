package queries

import (
	"context"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAgentProfileQueryHandler reads one agent profile from the database.
type GetAgentProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentProfileQueryHandler creates a handler for single-profile reads.
func NewGetAgentProfileQueryHandler(db *gorm.DB) GetAgentProfileQueryHandler {
	return GetAgentProfileQueryHandler{db: db}
}

// Handle executes the query. Callers other than the profile owner and
// administrators are rejected before the database is touched.
func (h GetAgentProfileQueryHandler) Handle(
	ctx context.Context,
	query GetAgentProfileQuery,
) (AgentProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentProfileResponse{}, err
	}

	principal := query.Principal()
	if !principal.ID().IsEqual(query.AccountID()) && !principal.HasRole(account.Admin) {
		return AgentProfileResponse{}, errs.NewAccessForbiddenError("agent profile belongs to another principal")
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
		WHERE account_id = ?
	`, query.AccountID().Bytes()).Rows()
	if err != nil {
		return AgentProfileResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AgentProfileResponse{}, err
		}
		return AgentProfileResponse{}, errs.NewObjectNotFoundError(
			"agent profile", query.AccountID().String(),
		)
	}

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
		return AgentProfileResponse{}, err
	}

	if response.AccountID, err = kernel.UUIDFromBytes(accountID[:]); err != nil {
		return AgentProfileResponse{}, err
	}
	response.Services = services
	response.AcceptedCategories = accepted

	return response, nil
}
