package services

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, displayName string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(ctx context.Context, userID, name, bankName, color string, initialBalance int64) (*models.Account, error)
	GetUserAccounts(ctx context.Context, userID string) ([]models.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// LedgerServicer defines the contract for the combined act of recording a
// transaction and adjusting its account's balance, plus transaction reads.
type LedgerServicer interface {
	RecordTransaction(ctx context.Context, userID, accountID string, txType models.TransactionType, amount int64, category, note string, date time.Time) (*models.Transaction, *models.Account, error)
	GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	RecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}
