package account

import (
	"fmt"

	"ewaste/internal/pkg/errs"
)

// Role represents the capability class of an account. It determines which
// operations the holder may perform on pickup requests.
//
// Roles are flat, not hierarchical: an admin is not implicitly an agent.
// Each operation declares the exact set of roles it admits.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Requester files pickup requests, cancels their own pending requests,
	// and rates completed ones.
	Requester

	// Agent claims pending pickup requests and services them through to
	// completion.
	Agent

	// Admin verifies agent business profiles.
	Admin
)

// getRoleStrings returns the string form of every Role, including UnknownRole.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Requester:   "requester",
		Agent:       "agent",
		Admin:       "admin",
	}
}

// getValidRoleStrings returns only the roles an account may actually hold.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Requester: "requester",
		Agent:     "agent",
		Admin:     "admin",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are: Requester, Agent, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role, as used in credentials and
// API payloads. Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses the lowercase role name used in credentials and API
// payloads. Returns an error for anything that is not a valid role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
