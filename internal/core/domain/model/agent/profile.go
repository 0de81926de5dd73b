package agent

import (
	"errors"
	"strings"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through NewProfile or RestoreProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile constructor")

// Profile is a recycling agent's business profile: what the agent calls
// itself, which collection services it offers, and which e-waste categories
// it accepts. Profiles start unverified; an administrator marks them
// verified, which makes them appear in the public agent directory.
//
// The profile is keyed by the agent's account ID: one profile per agent
// account, updated in place.
type Profile struct {
	// accountID is the owning agent account
	accountID kernel.UUID

	businessName string
	services     []Service
	accepted     []pickup.Category
	verified     bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProfile creates an unverified business profile for the given agent
// account. The business name and at least one service and one accepted
// category are required.
func NewProfile(
	accountID kernel.UUID,
	businessName string,
	services []Service,
	accepted []pickup.Category,
	now time.Time,
) (*Profile, error) {
	p := &Profile{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := accountID.Validate(); err != nil {
		return nil, err
	}
	p.accountID = accountID

	if err := p.apply(businessName, services, accepted, now); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(
	accountID kernel.UUID,
	businessName string,
	services []Service,
	accepted []pickup.Category,
	verified bool,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	p, err := NewProfile(accountID, businessName, services, accepted, createdAt)
	if err != nil {
		return nil, err
	}
	p.verified = verified
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Profile instance was properly constructed.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// AccountID returns the owning agent account's ID.
func (p *Profile) AccountID() kernel.UUID {
	return p.accountID
}

// BusinessName returns the agent's business name.
func (p *Profile) BusinessName() string {
	return p.businessName
}

// Services returns the collection services the agent offers.
func (p *Profile) Services() []Service {
	return p.services
}

// AcceptedCategories returns the e-waste categories the agent accepts.
func (p *Profile) AcceptedCategories() []pickup.Category {
	return p.accepted
}

// IsVerified reports whether an administrator has verified the profile.
func (p *Profile) IsVerified() bool {
	return p.verified
}

// CreatedAt returns the profile creation timestamp.
func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces the profile's business details. Verification status is
// untouched: editing a verified profile keeps it verified.
func (p *Profile) Update(businessName string, services []Service, accepted []pickup.Category, now time.Time) error {
	return p.apply(businessName, services, accepted, now)
}

// Verify marks the profile as verified by an administrator. Verifying an
// already verified profile is a no-op.
func (p *Profile) Verify(now time.Time) {
	if p.verified {
		return
	}
	p.verified = true
	p.updatedAt = now
}

func (p *Profile) apply(businessName string, services []Service, accepted []pickup.Category, now time.Time) error {
	if strings.TrimSpace(businessName) == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("services")
	}
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if len(accepted) == 0 {
		return errs.NewValueIsRequiredError("acceptedCategories")
	}
	for _, c := range accepted {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	p.businessName = businessName
	p.services = services
	p.accepted = accepted
	p.updatedAt = now
	return nil
}
