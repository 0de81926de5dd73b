package queries

import (
	"context"

	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAccountQueryHandler retrieves account details from the database.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account reads.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the account read. Reading another principal's account is
// forbidden unless the caller is an administrator.
func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	if !query.Principal().HasRole(account.Admin) && !query.AccountID().IsEqual(query.Principal().ID()) {
		return AccountResponse{}, errs.NewAccessForbiddenError("account belongs to another principal")
	}

	response, _, err := findAccountByID(ctx, h.db, query.AccountID())
	if err != nil {
		return AccountResponse{}, err
	}

	return response, nil
}
