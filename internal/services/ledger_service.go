package services

import (
	"context"
	"errors"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/store"
)

// ledgerService maintains the invariant that an account's balance
// reflects its cumulative signed transaction history on the write path.
type ledgerService struct {
	store store.Store
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(s store.Store) LedgerServicer {
	return &ledgerService{store: s}
}

// RecordTransaction persists a transaction and adjusts the referenced
// account's balance by +amount for income or -amount for expense. Both
// writes happen in one atomic store operation, so the post-condition
// balance_after == balance_before + delta holds whenever this returns
// without error, and a failure leaves both records untouched.
func (s *ledgerService) RecordTransaction(
	ctx context.Context,
	userID, accountID string,
	txType models.TransactionType,
	amount int64,
	category, note string,
	date time.Time,
) (*models.Transaction, *models.Account, error) {
	if amount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	var delta int64
	switch txType {
	case models.TransactionTypeIncome:
		delta = amount
	case models.TransactionTypeExpense:
		delta = -amount
	default:
		return nil, nil, apperrors.ErrInvalidTransactionType
	}

	if accountID == "" {
		return nil, nil, s.missingAccountError(ctx, userID)
	}

	if date.IsZero() {
		date = time.Now()
	}

	txn := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Category:  category,
		Note:      note,
		Date:      date,
	}

	txn, account, err := s.store.ApplyTransaction(ctx, txn, delta)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil, s.missingAccountError(ctx, userID)
		}
		return nil, nil, err
	}
	return txn, account, nil
}

// missingAccountError distinguishes "no account selected or found" from
// "the user has no accounts at all", which gets the friendlier
// add-an-account-first message.
func (s *ledgerService) missingAccountError(ctx context.Context, userID string) error {
	accounts, err := s.store.AccountsByUser(ctx, userID)
	if err == nil && len(accounts) == 0 {
		return apperrors.ErrNoAccounts
	}
	return apperrors.ErrAccountNotFound
}

// GetUserTransactions returns a page of the user's transactions ordered
// most-recent-first.
func (s *ledgerService) GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	transactions, totalItems, err := s.store.TransactionsByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// RecentTransactions returns the user's most recent transactions, bounded
// by limit. Used by the dashboard's recent-activity view.
func (s *ledgerService) RecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	transactions, _, err := s.store.TransactionsByUser(ctx, userID, limit, 0)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
