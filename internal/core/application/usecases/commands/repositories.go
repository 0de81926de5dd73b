// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"ewaste/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PickupRepoFactory provides access to the pickup repository within a transaction.
	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// AgentProfileRepoFactory provides access to the agent profile repository within a transaction.
	AgentProfileRepoFactory interface {
		AgentProfileRepository() ports.AgentProfileRepository
	}

	// PickupUoW manages transactions for pickup-only operations.
	// Used by every lifecycle command: create, claim, start, complete,
	// cancel, feedback, and the expiry job.
	PickupUoW interface {
		TxManager
		PickupRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// AgentProfileUoW manages transactions for agent-profile operations.
	AgentProfileUoW interface {
		TxManager
		AgentProfileRepoFactory
	}

	// AgentProfileUoWFactory creates new agent profile unit of work instances.
	AgentProfileUoWFactory interface {
		Create() AgentProfileUoW
	}
)
