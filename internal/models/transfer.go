package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer statuses
const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
	TransferStatusFailed    = "failed"
)

// Transfer links the debit-side ledger entry (TransactionID) with both
// accounts and the fee charged. The credit-side entry points back here via
// its own transfer_id column. Rows are append-only; a failed attempt never
// produces one.
type Transfer struct {
	gorm.Model
	TransactionID uint            `gorm:"index;not null"`
	FromAccountID uint            `gorm:"index;not null"`
	ToAccountID   uint            `gorm:"index;not null"`
	Fee           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status        string          `gorm:"not null;default:'completed'"`
	CompletedAt   *time.Time
}
