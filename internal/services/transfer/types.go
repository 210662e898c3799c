package transfer

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var minAmount = decimal.RequireFromString("0.01")

const (
	pinMinLen = 4
	pinMaxLen = 6
)

// CreateTransferInput is the engine's input contract. UserID is the
// already-authenticated requester, never taken from the request body.
type CreateTransferInput struct {
	UserID        uint
	FromAccountID uint            `json:"from_account_id"`
	ToAccountID   uint            `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	PIN           string          `json:"pin"`
}

// Validate rejects malformed input before the unit of work begins.
func (in CreateTransferInput) Validate() error {
	if in.FromAccountID == 0 {
		return fmt.Errorf("%w: from_account_id is required", ErrValidation)
	}
	if in.ToAccountID == 0 {
		return fmt.Errorf("%w: to_account_id is required", ErrValidation)
	}
	if in.FromAccountID == in.ToAccountID {
		return fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
	}
	if in.Amount.LessThan(minAmount) {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if len(in.PIN) < pinMinLen || len(in.PIN) > pinMaxLen {
		return fmt.Errorf("%w: pin must be %d-%d characters", ErrValidation, pinMinLen, pinMaxLen)
	}
	return nil
}

// TransferResult is the committed outcome returned to the caller.
type TransferResult struct {
	TransferID    uint            `json:"transfer_id"`
	TransactionID uint            `json:"transaction_id"`
	FromAccountID uint            `json:"from_account_id"`
	ToAccountID   uint            `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Pagination is the page metadata attached to transfer listings.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
