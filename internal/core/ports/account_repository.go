package ports

import (
	"context"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. The email must not already be registered;
	// a duplicate fails with a ConcurrentModificationError.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its normalized email address.
	// Used by login; returns ObjectNotFoundError for unknown emails.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
