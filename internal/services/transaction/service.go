// Package transaction records user income and expense entries. These are
// bookkeeping rows scoped to a user and optional category; account balances
// are not touched here; only the transfer and funding services move money.
package transaction

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/validation"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("amount and valid type are required")

// CreateInput is the payload for recording an income or expense.
type CreateInput struct {
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	CategoryID *uint           `json:"category_id"`
	Note       string          `json:"note"`
	OccurredAt *time.Time      `json:"occurred_at"`
}

// UpdateInput carries the mutable fields of an existing record.
type UpdateInput struct {
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *uint           `json:"category_id"`
	Note       string          `json:"note"`
	OccurredAt *time.Time      `json:"occurred_at"`
}

type Service interface {
	Create(ctx context.Context, userID uint, input CreateInput) (*models.Transaction, error)
	List(ctx context.Context, userID uint, filter repositories.TransactionFilter) ([]models.Transaction, error)
	Get(userID, id uint) (*models.Transaction, error)
	Update(userID, id uint, input UpdateInput) (*models.Transaction, error)
	Delete(userID, id uint) error
}

type service struct {
	repo repositories.TransactionRepository
}

func NewService(repo repositories.TransactionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uint, input CreateInput) (*models.Transaction, error) {
	if !input.Amount.IsPositive() || !validation.TransactionType(input.Type) {
		return nil, ErrInvalidInput
	}

	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	tx := &models.Transaction{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Note,
		Status:      models.TransactionStatusCompleted,
		OccurredAt:  occurredAt,
	}
	if err := s.repo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *service) List(ctx context.Context, userID uint, filter repositories.TransactionFilter) ([]models.Transaction, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}

func (s *service) Get(userID, id uint) (*models.Transaction, error) {
	return s.repo.GetOwned(id, userID)
}

func (s *service) Update(userID, id uint, input UpdateInput) (*models.Transaction, error) {
	tx, err := s.repo.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if !input.Amount.IsPositive() {
		return nil, ErrInvalidInput
	}

	tx.Amount = input.Amount
	tx.CategoryID = input.CategoryID
	tx.Description = input.Note
	if input.OccurredAt != nil {
		tx.OccurredAt = *input.OccurredAt
	}

	if err := s.repo.Update(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *service) Delete(userID, id uint) error {
	return s.repo.Delete(id, userID)
}
