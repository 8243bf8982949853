// Package accounts declares the account store contract and its PostgreSQL
// and in-memory implementations.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/server/models"
)

// Repository persists accounts. Emails are compared case-insensitively:
// implementations lower-case them on every write and read.
type Repository interface {
	// Create stores a new account, assigning ID and CreatedAt. A second account
	// with the same email fails with common.ErrDuplicateEmail.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// FindByEmail returns common.ErrorNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// FindByID returns common.ErrorNotFound when no account matches.
	FindByID(ctx context.Context, id string) (*models.Account, error)
}
