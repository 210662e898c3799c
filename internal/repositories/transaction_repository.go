package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionFilter narrows income/expense listings.
type TransactionFilter struct {
	Type string
	From *time.Time
	To   *time.Time
}

// CategoryTotal is one row of the monthly category breakdown.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// TypeTotal is an aggregate of transaction amounts for one type.
type TypeTotal struct {
	Type  string
	Total decimal.Decimal
}

type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetOwned(id, userID uint) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, error)
	Update(tx *models.Transaction) error
	Delete(id, userID uint) error
	TotalsByType(ctx context.Context, userID uint, start, end time.Time) ([]TypeTotal, error)
	CategoryBreakdown(ctx context.Context, userID uint, start, end time.Time, limit int) ([]CategoryTotal, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetOwned(id, userID uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", *filter.To)
	}

	var transactions []models.Transaction
	if err := query.Order("occurred_at DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Update(tx *models.Transaction) error {
	if err := r.db.Save(tx).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) Delete(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) TotalsByType(ctx context.Context, userID uint, start, end time.Time) ([]TypeTotal, error) {
	var totals []TypeTotal
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Where("type IN ?", []string{models.TransactionTypeIncome, models.TransactionTypeExpense}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total transactions: %w", err)
	}
	return totals, nil
}

func (r *transactionRepository) CategoryBreakdown(ctx context.Context, userID uint, start, end time.Time, limit int) ([]CategoryTotal, error) {
	var breakdown []CategoryTotal
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.user_id = ? AND t.occurred_at >= ? AND t.occurred_at < ? AND t.deleted_at IS NULL", userID, start, end).
		Where("t.type IN ?", []string{models.TransactionTypeIncome, models.TransactionTypeExpense}).
		Select("c.name, t.type, COALESCE(SUM(t.amount), 0) AS total").
		Group("c.name, t.type").
		Order("total DESC").
		Limit(limit).
		Scan(&breakdown).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build category breakdown: %w", err)
	}
	return breakdown, nil
}
