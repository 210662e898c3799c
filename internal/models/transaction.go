package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
	TransactionTypeDeposit  = "deposit"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is a single row of the transactions table. Income and expense
// records are user-scoped (CategoryID set, AccountID nil); ledger entries
// written by the transfer engine are account-scoped with a signed amount
// (negative = debit, positive = credit) and, on the credit side, a TransferID
// linking the entry back to its transfer.
type Transaction struct {
	gorm.Model
	UserID      uint            `gorm:"index;not null"`
	AccountID   *uint           `gorm:"index"`
	CategoryID  *uint           `gorm:"index"`
	TransferID  *uint           `gorm:"index"`
	Type        string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Description string
	Reference   string    `gorm:"index"`
	Status      string    `gorm:"not null;default:'completed'"`
	OccurredAt  time.Time `gorm:"index;not null"`
}
