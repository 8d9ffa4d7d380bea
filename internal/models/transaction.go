package models

import "time"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded money movement.
//
// AccountID is a weak reference: there is no foreign-key constraint, and
// deleting an account leaves its transactions in place with a dangling
// reference. Amount is always stored non-negative; direction is carried
// by Type. Transactions are immutable once recorded.
type Transaction struct {
	Base
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID string          `gorm:"type:uuid;not null" json:"account_id"`
	Type      TransactionType `gorm:"not null" json:"type"`
	Amount    int64           `gorm:"type:bigint;not null" json:"amount"`
	Category  string          `gorm:"not null" json:"category"`
	Note      string          `json:"note"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
}
