package agent

import (
	"fmt"

	"ewaste/internal/pkg/errs"
)

// Service is a collection mode a recycling agent offers.
type Service int

const (
	// UnknownService represents an invalid or undefined service.
	UnknownService Service = iota

	// Pickup means the agent collects e-waste at the requester's address.
	Pickup

	// DropOff means requesters bring e-waste to the agent's facility.
	DropOff

	// OnSite means the agent processes e-waste at the requester's premises.
	OnSite

	// MailIn means requesters ship e-waste to the agent.
	MailIn
)

func getValidServiceStrings() map[Service]string {
	//nolint:exhaustive // UnknownService is intentionally excluded as it's invalid
	return map[Service]string{
		Pickup:  "pickup",
		DropOff: "drop-off",
		OnSite:  "on-site",
		MailIn:  "mail-in",
	}
}

// Validate checks if the Service value is valid.
func (s Service) Validate() error {
	if _, ok := getValidServiceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service is invalid", fmt.Errorf("%d is not a valid service", s))
	}
	return nil
}

// String returns the lowercase service name as used in API payloads.
func (s Service) String() string {
	if str, ok := getValidServiceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ServiceFromString parses the lowercase service name used in API payloads.
func ServiceFromString(str string) (Service, error) {
	for s, name := range getValidServiceStrings() {
		if name == str {
			return s, nil
		}
	}
	return UnknownService, errs.NewValueIsInvalidErrorWithCause("service is invalid", fmt.Errorf("%q is not a valid service", str))
}
