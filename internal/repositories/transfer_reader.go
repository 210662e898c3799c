package repositories

import (
	"context"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// TransferReader serves the read-only transfer views. It only ever sees
// committed rows; it never participates in the transfer engine's unit of
// work.
type TransferReader interface {
	ListByUser(ctx context.Context, userID uint, limit, offset int, status string) ([]models.TransferDetail, int64, error)
	GetByID(ctx context.Context, transferID, userID uint) (*models.TransferDetail, error)
	Recent(ctx context.Context, userID uint, limit int) ([]models.TransferDetail, error)
}

type transferReader struct {
	db *gorm.DB
}

func NewTransferReader(db *gorm.DB) TransferReader {
	return &transferReader{db: db}
}

const transferDetailColumns = `
	tr.id AS transfer_id,
	tr.transaction_id,
	tr.from_account_id,
	tr.to_account_id,
	tr.fee,
	tr.status,
	tr.completed_at,
	(-t.amount - tr.fee) AS amount,
	(-t.amount) AS total_amount,
	t.description,
	t.reference,
	t.occurred_at,
	fa.account_number AS from_account_number,
	fa.account_type AS from_account_type,
	ta.account_number AS to_account_number,
	ta.account_type AS to_account_type`

func (r *transferReader) baseQuery(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transfers tr").
		Joins("JOIN transactions t ON t.id = tr.transaction_id").
		Joins("JOIN accounts fa ON fa.id = tr.from_account_id").
		Joins("JOIN accounts ta ON ta.id = tr.to_account_id").
		Where("fa.user_id = ? AND tr.deleted_at IS NULL", userID)
}

func (r *transferReader) ListByUser(ctx context.Context, userID uint, limit, offset int, status string) ([]models.TransferDetail, int64, error) {
	query := r.baseQuery(ctx, userID)
	if status != "" {
		query = query.Where("tr.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	var transfers []models.TransferDetail
	err := query.
		Select(transferDetailColumns).
		Order("t.occurred_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&transfers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, total, nil
}

func (r *transferReader) GetByID(ctx context.Context, transferID, userID uint) (*models.TransferDetail, error) {
	var detail models.TransferDetail
	result := r.baseQuery(ctx, userID).
		Where("tr.id = ?", transferID).
		Select(transferDetailColumns).
		Limit(1).
		Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &detail, nil
}

func (r *transferReader) Recent(ctx context.Context, userID uint, limit int) ([]models.TransferDetail, error) {
	var transfers []models.TransferDetail
	err := r.baseQuery(ctx, userID).
		Where("tr.status = ?", models.TransferStatusCompleted).
		Select(transferDetailColumns).
		Order("t.occurred_at DESC").
		Limit(limit).
		Scan(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transfers: %w", err)
	}
	return transfers, nil
}
