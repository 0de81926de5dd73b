package commands

import (
	"errors"
	"strings"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

const minPasswordLength = 8

// RegisterAccountCommand represents a self-service registration. Only the
// requester and agent roles can be registered this way; admin accounts are
// provisioned out of band.
//
// The plaintext password lives only inside this command; the handler hashes
// it before the domain ever sees it.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	name      string
	email     string
	password  string
	role      account.Role
	phone     string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name, email, password string,
	role account.Role,
	phone string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the account holder's display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Role returns the requested capability class.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// Phone returns the optional contact phone number.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, "unbounded")
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == account.Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", errors.New("admin accounts cannot self-register"))
	}
	c.role = role
	return nil
}
