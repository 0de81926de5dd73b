package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var ErrVerifyAgentCommandIsNotConstructed = errors.New(
	"VerifyAgentCommand must be created via NewVerifyAgentCommand constructor",
)

// VerifyAgentCommand represents an administrator verifying an agent's
// business profile, admitting it to the public directory.
type VerifyAgentCommand struct { //nolint:recvcheck //using for validation
	agentAccountID kernel.UUID
	principal      account.Principal

	guard guard.ConstructorGuard
}

// NewVerifyAgentCommand creates a command for the given administrator to
// verify the given agent's profile.
func NewVerifyAgentCommand(agentAccountID kernel.UUID, principal account.Principal) (VerifyAgentCommand, error) {
	cmd := VerifyAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agentAccountID.Validate(),
		principal.Validate(),
	); err != nil {
		return VerifyAgentCommand{}, err
	}

	cmd.agentAccountID = agentAccountID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAgentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAgentCommandIsNotConstructed)
}

// AgentAccountID returns the agent account whose profile is verified.
func (c VerifyAgentCommand) AgentAccountID() kernel.UUID {
	return c.agentAccountID
}

// Principal returns the acting administrator.
func (c VerifyAgentCommand) Principal() account.Principal {
	return c.principal
}
