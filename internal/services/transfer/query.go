package transfer

import (
	"context"

	"fintrack/internal/models"
)

const (
	defaultPage     = 1
	defaultLimit    = 10
	maxLimit        = 100
	recentListLimit = 5
)

// GetTransfersByUser lists transfers whose source account belongs to the
// user, newest first, with page metadata.
func (s *service) GetTransfersByUser(ctx context.Context, userID uint, page, limit int, status string) ([]models.TransferDetail, Pagination, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	transfers, total, err := s.reader.ListByUser(ctx, userID, limit, offset, status)
	if err != nil {
		return nil, Pagination{}, err
	}

	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}

	return transfers, Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}

// GetTransferByID returns the transfer if its source account belongs to the
// user, or nil when there is no such transfer. Absence is not an error; the
// HTTP layer turns nil into a 404.
func (s *service) GetTransferByID(ctx context.Context, transferID, userID uint) (*models.TransferDetail, error) {
	return s.reader.GetByID(ctx, transferID, userID)
}

// GetRecentTransfers returns the user's latest completed transfers. A missing
// limit falls back to the default; an oversized one is clamped.
func (s *service) GetRecentTransfers(ctx context.Context, userID uint, limit int) ([]models.TransferDetail, error) {
	if limit < 1 {
		limit = recentListLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.reader.Recent(ctx, userID, limit)
}
