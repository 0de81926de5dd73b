package pickup

import (
	"errors"
	"fmt"

	"ewaste/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel for state-guard violations. Every
// IllegalTransitionError unwraps to it so callers can classify with errors.Is.
var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError reports an attempted status change that the
// transition graph does not allow. The request it was attempted on is left
// unmodified.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the
// attempted from -> to edge.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// Status represents the lifecycle state of a pickup request.
// It implements a state machine with defined transitions so requests follow
// the collection workflow.
//
// State transitions:
//
//	Pending --> Assigned --> InProgress --> Completed
//	   |            \------------------------/
//	   \--> Cancelled        (permissive completion)
//
// Completion directly from Assigned is deliberately allowed: an agent may
// finish a pickup without ever reporting it in progress. Cancellation is
// only possible while a request is still Pending.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly filed pickup request.
	// Requests in this status are visible to every agent and waiting to be
	// claimed.
	Pending

	// Assigned indicates an agent has claimed the request. The assignment
	// is final: the agent is never cleared or replaced.
	Assigned

	// InProgress indicates the assigned agent has started the pickup.
	InProgress

	// Completed indicates the assigned agent has finished the pickup.
	// Terminal except for feedback, which is not a status change.
	Completed

	// Cancelled indicates the request was withdrawn while still Pending,
	// either by its owner or by the overdue-expiry job. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in-progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in-progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Assigned, InProgress, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status as used in API payloads.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the lowercase status name used in API payloads.
func StatusFromString(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}

// ValidateCanHaveAgent validates consistency between a request's status and
// its agent assignment when reconstructing from persistence.
//
// Business rules:
//   - Pending and Cancelled requests must not have an agent assigned
//   - Assigned, InProgress, and Completed requests must have one
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	requiresAgent := s == Assigned || s == InProgress || s == Completed

	if hasAgent && !requiresAgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assigned agent", s),
		)
	}

	if !hasAgent && requiresAgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assigned agent", s),
		)
	}

	return nil
}

// Claim transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Every other starting status fails: a request already claimed by another
// agent cannot be claimed again (no reassignment), which is how the loser of
// a concurrent claim race observes the race.
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, NewIllegalTransitionError(s, Assigned)
	}
	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, NewIllegalTransitionError(s, InProgress)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//   - Assigned -> Completed (permissive: InProgress may be skipped)
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, NewIllegalTransitionError(s, Completed)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Cancellation from any later state is not modeled and fails like any other
// illegal transition.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, NewIllegalTransitionError(s, Cancelled)
	}
	return Cancelled, nil
}
