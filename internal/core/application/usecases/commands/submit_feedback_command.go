package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand represents the owner rating a completed pickup.
// The rating is validated at construction; a later submission overwrites an
// earlier one.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	pickupID  kernel.UUID
	principal account.Principal
	feedback  pickup.Feedback

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command for the given requester to rate
// the given request. The rating must be between 1 and 5.
func NewSubmitFeedbackCommand(
	pickupID kernel.UUID,
	principal account.Principal,
	rating int,
	comment string,
) (SubmitFeedbackCommand, error) {
	cmd := SubmitFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupID.Validate(),
		principal.Validate(),
	); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	feedback, err := pickup.NewFeedback(rating, comment)
	if err != nil {
		return SubmitFeedbackCommand{}, err
	}

	cmd.pickupID = pickupID
	cmd.principal = principal
	cmd.feedback = feedback
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// PickupID returns the request being rated.
func (c SubmitFeedbackCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// Principal returns the rating requester.
func (c SubmitFeedbackCommand) Principal() account.Principal {
	return c.principal
}

// Feedback returns the constructed rating value.
func (c SubmitFeedbackCommand) Feedback() pickup.Feedback {
	return c.feedback
}
