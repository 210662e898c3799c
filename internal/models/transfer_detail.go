package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferDetail is the read model returned by transfer queries: one transfer
// joined with its debit ledger entry and both account summaries. It is a
// projection, not a table.
type TransferDetail struct {
	TransferID        uint            `json:"transfer_id"`
	TransactionID     uint            `json:"transaction_id"`
	FromAccountID     uint            `json:"from_account_id"`
	ToAccountID       uint            `json:"to_account_id"`
	FromAccountNumber string          `json:"from_account_number"`
	FromAccountType   string          `json:"from_account_type"`
	ToAccountNumber   string          `json:"to_account_number"`
	ToAccountType     string          `json:"to_account_type"`
	Amount            decimal.Decimal `json:"amount"`
	Fee               decimal.Decimal `json:"fee"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Description       string          `json:"description"`
	Reference         string          `json:"reference"`
	Status            string          `json:"status"`
	OccurredAt        time.Time       `json:"occurred_at"`
	CompletedAt       *time.Time      `json:"completed_at"`
}
