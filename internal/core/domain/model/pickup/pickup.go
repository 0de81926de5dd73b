package pickup

import (
	"errors"
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"
)

// ErrPickupIsNotConstructed is returned when a Pickup instance was not
// created through NewPickup or RestorePickup. This ensures all pickup
// requests are properly validated.
var ErrPickupIsNotConstructed = errors.New("Pickup must be created via NewPickup or RestorePickup constructor")

// Pickup represents an e-waste pickup request. It is the aggregate root that
// manages the request lifecycle from filing through agent assignment to
// completion and feedback.
//
// Pickup follows these invariants:
//   - ownerID is set at creation and never changes
//   - agentID only transitions from absent to set, never cleared or replaced
//   - status only moves along the directed transition graph (see Status)
//   - items, schedule, and address are immutable after creation
//   - closingNote is settable only on the transition into Completed
//   - feedback is writable only by the owner once the request is Completed
//   - updatedAt is refreshed on every mutation; createdAt never changes
//
// All transition methods compute the full next state in memory and either
// apply it completely or leave the request untouched. Persisting the result
// atomically (conditional on the status the caller loaded) is the
// repository's responsibility.
type Pickup struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// ownerID is the requester who filed the request
	ownerID kernel.UUID

	// agentID is the assigned recycling agent's ID (nil until claimed)
	agentID *kernel.UUID

	// items are the e-waste lines to be collected (never empty)
	items []Item

	// status is the current state in the request lifecycle
	status Status

	// schedule is the requested collection slot
	schedule Schedule

	// address is the collection location
	address Address

	// closingNote is the agent's message recorded at completion
	closingNote string

	// feedback is the owner's rating of the completed pickup (nil until rated)
	feedback *Feedback

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the pickup was created via a constructor
	isConstructed bool
}

// NewPickup files a new pickup request for the given owner. The request
// starts in Pending status with no agent assigned.
//
// Validation reports the first failing constraint: a valid id and owner, at
// least one item (each constructed via NewItem), a constructed schedule, and
// a constructed address.
func NewPickup(
	id kernel.UUID,
	ownerID kernel.UUID,
	items []Item,
	schedule Schedule,
	address Address,
	now time.Time,
) (*Pickup, error) {
	p := &Pickup{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := p.setID(id); err != nil {
		return nil, err
	}
	if err := p.setOwnerID(ownerID); err != nil {
		return nil, err
	}
	if err := p.setItems(items); err != nil {
		return nil, err
	}
	if err := p.setSchedule(schedule); err != nil {
		return nil, err
	}
	if err := p.setAddress(address); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePickup reconstructs a pickup request from persistence. In addition
// to the creation-time constraints it validates the status value and the
// consistency between status and agent assignment.
func RestorePickup(
	id kernel.UUID,
	ownerID kernel.UUID,
	agentID *kernel.UUID,
	items []Item,
	status Status,
	schedule Schedule,
	address Address,
	closingNote string,
	feedback *Feedback,
	createdAt, updatedAt time.Time,
) (*Pickup, error) {
	p, err := NewPickup(id, ownerID, items, schedule, address, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err = agentID.Validate(); err != nil {
			return nil, err
		}
	}
	if feedback != nil {
		if err = feedback.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.agentID = agentID
	p.closingNote = closingNote
	p.feedback = feedback
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Pickup instance was properly constructed.
func (p *Pickup) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickupIsNotConstructed
	}
	return nil
}

// IsEqual compares two pickup requests by their unique identifiers.
func (p *Pickup) IsEqual(other *Pickup) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (p *Pickup) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the requester who filed the request.
func (p *Pickup) OwnerID() kernel.UUID {
	return p.ownerID
}

// Agent returns the assigned agent's ID, or nil if the request has not been
// claimed.
func (p *Pickup) Agent() *kernel.UUID {
	return p.agentID
}

// Items returns the e-waste lines to be collected.
func (p *Pickup) Items() []Item {
	return p.items
}

// Status returns the current lifecycle status.
func (p *Pickup) Status() Status {
	return p.status
}

// Schedule returns the requested collection slot.
func (p *Pickup) Schedule() Schedule {
	return p.schedule
}

// Address returns the collection location.
func (p *Pickup) Address() Address {
	return p.address
}

// ClosingNote returns the agent's completion message, empty until completed.
func (p *Pickup) ClosingNote() string {
	return p.closingNote
}

// Feedback returns the owner's rating, or nil if not yet rated.
func (p *Pickup) Feedback() *Feedback {
	return p.feedback
}

// CreatedAt returns the filing timestamp.
func (p *Pickup) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (p *Pickup) UpdatedAt() time.Time {
	return p.updatedAt
}

// Claim assigns the request to the given agent and moves it to Assigned.
//
// Business rules:
//   - The agent ID must be valid
//   - The request must currently be Pending
//   - The assignment is final: there is no reassignment edge, so a second
//     claim observes the request already Assigned and fails with an
//     IllegalTransitionError
//
// The repository must persist the result conditionally on the Pending
// status so that of two concurrent claims exactly one wins.
func (p *Pickup) Claim(agentID kernel.UUID, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Claim()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.agentID = &agentID
	p.updatedAt = now
	return nil
}

// Start marks the pickup as underway. Only the assigned agent may start it,
// and only from Assigned status.
func (p *Pickup) Start(agentID kernel.UUID, now time.Time) error {
	newStatus, err := p.status.Start()
	if err != nil {
		return err
	}
	if err = p.guardAssignedTo(agentID); err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// Complete finishes the pickup, recording an optional closing note from the
// agent. Only the assigned agent may complete it, from InProgress or
// directly from Assigned.
func (p *Pickup) Complete(agentID kernel.UUID, closingNote string, now time.Time) error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}
	if err = p.guardAssignedTo(agentID); err != nil {
		return err
	}

	p.status = newStatus
	p.closingNote = closingNote
	p.updatedAt = now
	return nil
}

// Cancel withdraws a still-pending request. Only the owner may cancel.
func (p *Pickup) Cancel(requesterID kernel.UUID, now time.Time) error {
	if err := p.guardOwnedBy(requesterID); err != nil {
		return err
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// Expire cancels a pending request whose scheduled date has passed. Used by
// the system expiry job; bypasses the ownership guard but follows the same
// Pending -> Cancelled edge as an owner cancellation.
func (p *Pickup) Expire(now time.Time) error {
	if !p.schedule.IsOverdue(now) {
		return NewIllegalTransitionError(p.status, Cancelled)
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// SubmitFeedback records the owner's rating of a completed pickup.
//
// Business rules:
//   - Only the owner may rate (ownership mismatch fails with AccessForbidden)
//   - The request must be Completed (otherwise IllegalTransition)
//   - A later submission overwrites the earlier one
func (p *Pickup) SubmitFeedback(requesterID kernel.UUID, f Feedback, now time.Time) error {
	if err := p.guardOwnedBy(requesterID); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if p.status != Completed {
		return NewIllegalTransitionError(p.status, p.status)
	}

	p.feedback = &f
	p.updatedAt = now
	return nil
}

// ReadableBy reports whether the given principal may read this request by
// id: its owner, its assigned agent, or an admin. Listing endpoints apply
// their own filters and do not go through this check.
func (p *Pickup) ReadableBy(principal account.Principal) bool {
	if principal.Role() == account.Admin {
		return true
	}
	if p.ownerID.IsEqual(principal.ID()) {
		return true
	}
	return p.agentID != nil && p.agentID.IsEqual(principal.ID())
}

// guardAssignedTo fails with an AccessForbiddenError unless the request is
// assigned to the given agent.
func (p *Pickup) guardAssignedTo(agentID kernel.UUID) error {
	if p.agentID == nil || !p.agentID.IsEqual(agentID) {
		return errs.NewAccessForbiddenError("pickup is not assigned to this agent")
	}
	return nil
}

// guardOwnedBy fails with an AccessForbiddenError unless the request belongs
// to the given requester.
func (p *Pickup) guardOwnedBy(requesterID kernel.UUID) error {
	if !p.ownerID.IsEqual(requesterID) {
		return errs.NewAccessForbiddenError("pickup belongs to another requester")
	}
	return nil
}

func (p *Pickup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pickup) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Pickup) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	p.items = items
	return nil
}

func (p *Pickup) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	p.schedule = schedule
	return nil
}

func (p *Pickup) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}
