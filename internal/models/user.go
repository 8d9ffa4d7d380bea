package models

// User represents the user model in the database
type User struct {
	Base
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"display_name"`

	Accounts []Account `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
}
