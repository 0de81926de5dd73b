package account

import (
	"errors"
	"strings"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

// Account is the aggregate backing credential issuance. It holds the
// identity attributes embedded into credentials (id, role) together with the
// profile attributes the original registration collects.
//
// Invariants:
//   - id and role are set at registration and immutable
//   - email is non-empty and uniquely identifies the account (enforced by storage)
//   - passwordHash is opaque to the domain; hashing lives behind the
//     PasswordHasher port
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	phone        string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewAccount creates an account at registration time. The password must
// already be hashed; the domain never sees plaintext credentials.
func NewAccount(id kernel.UUID, name, email, passwordHash string, role Role, phone string, now time.Time) (*Account, error) {
	a := &Account{
		isConstructed: true,
		createdAt:     now,
		updatedAt:     now,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.phone = phone
	return a, nil
}

// RestoreAccount reconstructs an account from persistence without re-running
// registration-time checks beyond basic invariants.
func RestoreAccount(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	phone string,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	a, err := NewAccount(id, name, email, passwordHash, role, phone, createdAt)
	if err != nil {
		return nil, err
	}
	a.updatedAt = updatedAt
	return a, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the account holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the account's login email.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the opaque password hash for verification by the
// PasswordHasher port.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's capability class.
func (a *Account) Role() Role {
	return a.role
}

// Phone returns the optional contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the timestamp of the last profile mutation.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// Principal derives the caller identity this account produces when a
// credential is issued for it.
func (a *Account) Principal() (Principal, error) {
	return NewPrincipal(a.id, a.role)
}

// UpdateProfile changes the mutable profile attributes. Identity attributes
// (id, email, role) stay fixed.
func (a *Account) UpdateProfile(name, phone string, now time.Time) error {
	if err := a.setName(name); err != nil {
		return err
	}
	a.phone = phone
	a.updatedAt = now
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = strings.ToLower(email)
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
