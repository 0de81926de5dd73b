// Package pickup provides the domain model and lifecycle engine for e-waste
// pickup requests. It implements the Pickup aggregate root with role-gated
// state transitions.
//
// The package includes:
//   - Pickup: the aggregate root managing request identity, items, schedule,
//     address, assignment, and lifecycle
//   - Status: a state machine enforcing legal status transitions
//   - Item, Address, Schedule, Feedback: validated value objects
//
// Key business rules:
//   - Requests are filed by a requester and start Pending
//   - An agent claims a pending request; the assignment is final
//   - Status follows pending -> assigned -> in-progress -> completed, with
//     assigned -> completed allowed and pending -> cancelled as the only
//     cancellation edge
//   - Feedback is writable only by the owner of a completed request
//
// Transition methods never leave the aggregate partially mutated: guards run
// first, then the full next state is applied. The single correctness-critical
// race, two agents claiming the same pending request, is resolved by the
// repository persisting the claim conditionally on the Pending status.
package pickup
