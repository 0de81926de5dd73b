package commands

import (
	"errors"

	"ewaste/internal/pkg/guard"
)

var ErrExpireOverduePickupsCommandIsNotConstructed = errors.New(
	"ExpireOverduePickupsCommand must be created via NewExpireOverduePickupsCommand constructor",
)

// ExpireOverduePickupsCommand triggers the system sweep that cancels pending
// requests whose scheduled date has passed without any agent claiming them.
// This is a parameterless command issued by the background job scheduler,
// not by a principal.
type ExpireOverduePickupsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOverduePickupsCommand creates a command to trigger the expiry sweep.
func NewExpireOverduePickupsCommand() ExpireOverduePickupsCommand {
	return ExpireOverduePickupsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireOverduePickupsCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverduePickupsCommandIsNotConstructed)
}
