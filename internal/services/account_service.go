package services

import (
	"context"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// accountService handles account-related business logic.
type accountService struct {
	store store.Store
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(s store.Store) AccountServicer {
	return &accountService{store: s}
}

// CreateAccount creates a new bank account for a user. The initial
// balance is entered directly; later balance changes happen only through
// the ledger operation.
func (s *accountService) CreateAccount(ctx context.Context, userID, name, bankName, color string, initialBalance int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if color == "" {
		color = models.AccountColors[0]
	}

	account := &models.Account{
		UserID:   userID,
		Name:     name,
		BankName: bankName,
		Balance:  initialBalance,
		Color:    color,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetUserAccounts retrieves all accounts for a user.
func (s *accountService) GetUserAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	return s.store.AccountsByUser(ctx, userID)
}

// GetAccountByID retrieves an account by ID for a specific user.
func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*models.Account, error) {
	return s.store.AccountByID(ctx, userID, accountID)
}

// DeleteAccount removes an account. Its transactions are kept: they hold
// only a weak reference and render as an unknown account afterwards.
func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	return s.store.DeleteAccount(ctx, userID, accountID)
}
