package report

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransactionRepo struct {
	totals    []repositories.TypeTotal
	breakdown []repositories.CategoryTotal

	gotStart time.Time
	gotEnd   time.Time
	gotLimit int
}

func (s *stubTransactionRepo) Create(*models.Transaction) error { return nil }
func (s *stubTransactionRepo) GetOwned(uint, uint) (*models.Transaction, error) {
	return nil, repositories.ErrTransactionNotFound
}
func (s *stubTransactionRepo) ListByUser(context.Context, uint, repositories.TransactionFilter) ([]models.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) Update(*models.Transaction) error { return nil }
func (s *stubTransactionRepo) Delete(uint, uint) error          { return nil }

func (s *stubTransactionRepo) TotalsByType(_ context.Context, _ uint, start, end time.Time) ([]repositories.TypeTotal, error) {
	s.gotStart = start
	s.gotEnd = end
	return s.totals, nil
}

func (s *stubTransactionRepo) CategoryBreakdown(_ context.Context, _ uint, start, end time.Time, limit int) ([]repositories.CategoryTotal, error) {
	s.gotLimit = limit
	return s.breakdown, nil
}

func TestMonthlyWindowAndTotals(t *testing.T) {
	repo := &stubTransactionRepo{
		totals: []repositories.TypeTotal{
			{Type: models.TransactionTypeIncome, Total: decimal.RequireFromString("3200.00")},
			{Type: models.TransactionTypeExpense, Total: decimal.RequireFromString("1480.55")},
		},
		breakdown: []repositories.CategoryTotal{
			{Name: "Rent", Type: "expense", Total: decimal.RequireFromString("900.00")},
		},
	}
	svc := NewService(repo)

	summary, err := svc.Monthly(context.Background(), 1, 2026, 2)
	require.NoError(t, err)

	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, 2, summary.Month)
	assert.True(t, summary.Totals.Income.Equal(decimal.RequireFromString("3200.00")))
	assert.True(t, summary.Totals.Expense.Equal(decimal.RequireFromString("1480.55")))
	assert.Len(t, summary.Breakdown, 1)

	// Half-open UTC month window, leap February included in full.
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), repo.gotEnd)
	assert.Equal(t, breakdownLimit, repo.gotLimit)
}

func TestMonthlyDefaultsToCurrentMonth(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewService(repo)

	now := time.Now().UTC()
	summary, err := svc.Monthly(context.Background(), 1, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, now.Year(), summary.Year)
	assert.Equal(t, int(now.Month()), summary.Month)
	assert.True(t, summary.Totals.Income.IsZero())
	assert.True(t, summary.Totals.Expense.IsZero())
}

func TestMonthlyClampsInvalidMonth(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewService(repo)

	summary, err := svc.Monthly(context.Background(), 1, 2025, 13)
	require.NoError(t, err)
	assert.Equal(t, int(time.Now().UTC().Month()), summary.Month)
}
