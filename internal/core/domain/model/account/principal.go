package account

import (
	"errors"
	"fmt"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through the NewPrincipal factory method.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the resolved identity and role of the caller for one
// operation. It is derived from a verified bearer credential and carries
// exactly the id and role embedded in the credential at issuance time; the
// role is not re-checked against current storage on each call.
//
// Principal is a value object: immutable, validated at construction, and
// never persisted by the core.
type Principal struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewPrincipal creates a Principal from a verified credential's identity
// payload. Both the id and the role must be valid.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Principal{}, err
	}

	return Principal{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Principal was created via NewPrincipal.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the principal's account identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's role as embedded in the credential.
func (p Principal) Role() Role {
	return p.role
}

// HasRole reports whether the principal holds one of the given roles.
// An empty role list admits any principal.
func (p Principal) HasRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if p.role == r {
			return true
		}
	}
	return false
}

// Authorize is the access-gate decision: it admits the principal when the
// required role set is empty (authentication only) or contains the
// principal's role, and denies with an AccessForbiddenError otherwise.
// It is a pure function with no side effects.
func (p Principal) Authorize(required ...Role) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.HasRole(required...) {
		return nil
	}
	return errs.NewAccessForbiddenErrorWithCause(
		"insufficient role",
		fmt.Errorf("role %s is not in %s", p.role, formatRoles(required)),
	)
}

func formatRoles(roles []Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return fmt.Sprintf("%v", names)
}
