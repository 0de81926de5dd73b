// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"time"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
// The email column carries a unique index; a duplicate registration is
// rejected by the database, not by application-level lookups.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string    `gorm:"type:varchar(16)"`
	Phone        string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database
// representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Phone:        aggregate.Phone(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		role,
		dto.Phone,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
