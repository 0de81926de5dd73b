package queries

import (
	"errors"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrGetVerifiedAgentsQueryIsNotConstructed = errors.New(
	"GetVerifiedAgentsQuery must be created via NewGetVerifiedAgentsQuery constructor",
)

// GetVerifiedAgentsQuery retrieves the public directory of verified
// recycling agents. This is a parameterless query open to any caller.
type GetVerifiedAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVerifiedAgentsQuery creates a query listing verified agents.
func NewGetVerifiedAgentsQuery() GetVerifiedAgentsQuery {
	return GetVerifiedAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVerifiedAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetVerifiedAgentsQueryIsNotConstructed)
}

// AgentProfileResponse represents an agent's business profile in the read
// model.
type AgentProfileResponse struct {
	AccountID          kernel.UUID
	BusinessName       string
	Services           []string
	AcceptedCategories []string
	Verified           bool
	UpdatedAt          time.Time
}
