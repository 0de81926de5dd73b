package queries

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountResponse represents an account in the read model. The password
// hash is never part of it.
type AccountResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	Phone     string
	CreatedAt time.Time
}

// findAccountByEmail reads one account row by normalized email. The hash is
// returned separately so only the login handler ever touches it.
func findAccountByEmail(ctx context.Context, db *gorm.DB, email string) (AccountResponse, string, error) {
	return findAccount(ctx, db, "LOWER(email) = LOWER(?)", email)
}

// findAccountByID reads one account row by id.
func findAccountByID(ctx context.Context, db *gorm.DB, id kernel.UUID) (AccountResponse, string, error) {
	return findAccount(ctx, db, "id = ?", id.String())
}

func findAccount(ctx context.Context, db *gorm.DB, where string, arg any) (AccountResponse, string, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			password_hash,
			role,
			phone,
			created_at
		FROM accounts
		WHERE `+where, arg).Rows()
	if err != nil {
		return AccountResponse{}, "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AccountResponse{}, "", err
		}
		return AccountResponse{}, "", errs.NewObjectNotFoundError("account", arg)
	}

	var (
		response     AccountResponse
		id           uuid.UUID
		passwordHash string
	)
	err = rows.Scan(
		&id,
		&response.Name,
		&response.Email,
		&passwordHash,
		&response.Role,
		&response.Phone,
		&response.CreatedAt,
	)
	if err != nil {
		return AccountResponse{}, "", err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AccountResponse{}, "", err
	}

	return response, passwordHash, nil
}
