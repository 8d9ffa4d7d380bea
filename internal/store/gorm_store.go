package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// GormStore implements Store on top of a GORM database handle.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying GORM handle. Used by migrations and tests.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateEmail
		}
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &user, nil
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &user, nil
}

func (s *GormStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *GormStore) AccountsByUser(ctx context.Context, userID string) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return accounts, nil
}

func (s *GormStore) AccountByID(ctx context.Context, userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &account, nil
}

func (s *GormStore) DeleteAccount(ctx context.Context, userID, accountID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		Delete(&models.Account{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// ApplyTransaction inserts the transaction and increments the account
// balance in a single database transaction. The increment runs as an
// atomic UPDATE expression rather than a read-modify-write.
func (s *GormStore) ApplyTransaction(ctx context.Context, txn *models.Transaction, delta int64) (*models.Transaction, *models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", txn.AccountID, txn.UserID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAccountNotFound
			}
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}

		if err := tx.Create(txn).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}

		if err := tx.Model(&models.Account{}).
			Where("id = ?", account.ID).
			Update("balance", gorm.Expr("balance + ?", delta)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}

		// Re-read inside the transaction so the returned account carries
		// the post-increment balance.
		if err := tx.Where("id = ?", account.ID).First(&account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return txn, &account, nil
}

func (s *GormStore) TransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var transactions []models.Transaction
	q := base.Order("date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&transactions).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return transactions, totalItems, nil
}

var _ Store = (*GormStore)(nil)
