package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account statuses
const (
	AccountStatusActive = "active"
	AccountStatusClosed = "closed"
	AccountStatusFrozen = "frozen"
)

type Account struct {
	gorm.Model
	UserID        uint            `gorm:"index;not null"`
	AccountNumber string          `gorm:"uniqueIndex;not null"`
	AccountType   string          `gorm:"default:'checking'"`
	Balance       decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Currency      string          `gorm:"size:3;default:'USD'"`
	Status        string          `gorm:"default:'active'"`
}

// IsActive reports whether the account can take part in money movement.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
