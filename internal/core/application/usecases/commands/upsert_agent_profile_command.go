package commands

import (
	"errors"
	"strings"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

var ErrUpsertAgentProfileCommandIsNotConstructed = errors.New(
	"UpsertAgentProfileCommand must be created via NewUpsertAgentProfileCommand constructor",
)

// UpsertAgentProfileCommand represents an agent creating or updating its
// business profile. The profile is keyed by the agent's own account; an
// agent cannot edit another agent's profile.
type UpsertAgentProfileCommand struct { //nolint:recvcheck //using for validation
	principal    account.Principal
	businessName string
	services     []agent.Service
	accepted     []pickup.Category

	guard guard.ConstructorGuard
}

// NewUpsertAgentProfileCommand creates a command for the given agent to set
// its business profile.
func NewUpsertAgentProfileCommand(
	principal account.Principal,
	businessName string,
	services []agent.Service,
	accepted []pickup.Category,
) (UpsertAgentProfileCommand, error) {
	cmd := UpsertAgentProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := principal.Validate(); err != nil {
		return UpsertAgentProfileCommand{}, err
	}
	if strings.TrimSpace(businessName) == "" {
		return UpsertAgentProfileCommand{}, errs.NewValueIsRequiredError("businessName")
	}

	cmd.principal = principal
	cmd.businessName = businessName
	cmd.services = services
	cmd.accepted = accepted
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertAgentProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpsertAgentProfileCommandIsNotConstructed)
}

// Principal returns the agent whose profile is being set.
func (c UpsertAgentProfileCommand) Principal() account.Principal {
	return c.principal
}

// BusinessName returns the agent's business name.
func (c UpsertAgentProfileCommand) BusinessName() string {
	return c.businessName
}

// Services returns the offered collection services.
func (c UpsertAgentProfileCommand) Services() []agent.Service {
	return c.services
}

// AcceptedCategories returns the accepted e-waste categories.
func (c UpsertAgentProfileCommand) AcceptedCategories() []pickup.Category {
	return c.accepted
}
