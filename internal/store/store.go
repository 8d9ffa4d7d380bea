// Package store persists users, accounts, and transactions scoped by
// owning user. Two implementations exist: a GORM-backed store for normal
// operation and an in-memory store used when no database is configured.
package store

import (
	"context"

	"fintrack/internal/models"
)

// Store is the persistence port shared by the database-backed and
// in-memory implementations. All reads are filtered by owning-user ID;
// the store performs no referential checks between accounts and
// transactions.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)

	// Accounts
	CreateAccount(ctx context.Context, account *models.Account) error
	AccountsByUser(ctx context.Context, userID string) ([]models.Account, error)
	AccountByID(ctx context.Context, userID, accountID string) (*models.Account, error)
	// DeleteAccount removes the account only. Transactions referencing it
	// are left in place with a dangling account ID.
	DeleteAccount(ctx context.Context, userID, accountID string) error

	// ApplyTransaction atomically inserts the transaction and adjusts the
	// referenced account's balance by delta. Either both writes take
	// effect or neither does. Returns the stored transaction and the
	// account with its updated balance.
	ApplyTransaction(ctx context.Context, txn *models.Transaction, delta int64) (*models.Transaction, *models.Account, error)

	// TransactionsByUser returns the user's transactions ordered by
	// occurrence date descending, along with the total count.
	TransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, int64, error)
}
