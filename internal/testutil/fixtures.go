package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, userID, 0)
}

// CreateTestAccountWithBalance creates an account with the given balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		BankName: "Test Bank",
		Balance:  balance,
		Color:    "#3b82f6",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction of the given type and amount (in cents).
// It writes the record directly, without touching the account balance.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Category:  "Test Category",
		Date:      time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
