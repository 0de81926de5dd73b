package pickup

import (
	"errors"
	"strings"

	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the collection location of a pickup request. All five fields
// are required; the address is immutable once the request is filed.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates a collection address. Validation reports the first
// missing field.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"street", street},
		{"city", city},
		{"state", state},
		{"zipCode", zipCode},
		{"country", country},
	} {
		if strings.TrimSpace(field.value) == "" {
			return Address{}, errs.NewValueIsRequiredError(field.name)
		}
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region.
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}
