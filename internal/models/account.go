package models

// Account represents a tracked bank account with a running balance.
//
// Balance is stored in cents and is maintained by the ledger service:
// recording an income transaction adds the amount, an expense subtracts
// it. The only other balance mutation is the initial value supplied at
// creation time.
type Account struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	BankName string `json:"bank_name"`
	Balance  int64  `gorm:"type:bigint;not null;default:0" json:"balance"`
	Color    string `json:"color"`
}
