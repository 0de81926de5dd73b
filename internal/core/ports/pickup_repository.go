// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, and the identity services.
// These interfaces establish dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
)

// PickupRepository defines the persistence contract for pickup request
// aggregates.
type PickupRepository interface {
	// Add persists a new pickup request.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *pickup.Pickup) error

	// Update persists changes to an existing pickup request, conditional on
	// the status the caller loaded. The write applies only if the stored
	// status still equals expectedStatus; otherwise nothing is written and a
	// ConcurrentModificationError is returned. This is how exactly one of
	// two concurrent claims wins.
	Update(ctx context.Context, aggregate *pickup.Pickup, expectedStatus pickup.Status) error

	// Get retrieves a pickup request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error)

	// GetAllPending retrieves all requests awaiting an agent, unfiltered.
	// This is the board every agent browses to find work.
	GetAllPending(ctx context.Context) ([]*pickup.Pickup, error)

	// GetAllByOwner retrieves all requests filed by the given requester,
	// in every status.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*pickup.Pickup, error)

	// GetAllByAgent retrieves all requests assigned to the given agent,
	// in every status past pending.
	GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*pickup.Pickup, error)

	// GetAllOverduePending retrieves all pending requests whose scheduled
	// date lies before the given day. Used by the expiry job.
	GetAllOverduePending(ctx context.Context, before time.Time) ([]*pickup.Pickup, error)
}
