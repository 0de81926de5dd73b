package ports

import (
	"context"

	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
)

// AgentProfileRepository defines the persistence contract for agent
// business profiles. Profiles are keyed by the agent's account ID.
type AgentProfileRepository interface {
	// Add persists a new profile.
	Add(ctx context.Context, aggregate *agent.Profile) error

	// Update persists changes to an existing profile.
	Update(ctx context.Context, aggregate *agent.Profile) error

	// Get retrieves the profile for the given agent account.
	Get(ctx context.Context, accountID kernel.UUID) (*agent.Profile, error)

	// GetAllVerified retrieves every administrator-verified profile. This is
	// the public agent directory.
	GetAllVerified(ctx context.Context) ([]*agent.Profile, error)
}
