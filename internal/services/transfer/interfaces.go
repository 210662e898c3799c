package transfer

import (
	"context"

	"fintrack/internal/models"
)

// Service is the transfer subsystem's contract: one write operation executed
// as an atomic unit of work, and three read-only views over committed data.
type Service interface {
	CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error)
	GetTransfersByUser(ctx context.Context, userID uint, page, limit int, status string) ([]models.TransferDetail, Pagination, error)
	GetTransferByID(ctx context.Context, transferID, userID uint) (*models.TransferDetail, error)
	GetRecentTransfers(ctx context.Context, userID uint, limit int) ([]models.TransferDetail, error)
}

// PinVerifier checks a transfer PIN against the requesting user's stored
// credential. The auth service provides the production implementation.
type PinVerifier interface {
	VerifyTransferPIN(ctx context.Context, userID uint, pin string) error
}

// AccountCache invalidates cached account snapshots after balance mutations.
type AccountCache interface {
	InvalidateAccounts(ctx context.Context, ids ...uint) error
}
