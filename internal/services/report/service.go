// Package report aggregates committed income/expense records into monthly
// summaries. Pure projection; nothing here writes.
package report

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

const breakdownLimit = 10

// MonthlySummary is the monthly report payload: totals by type plus the top
// categories for the UTC month window.
type MonthlySummary struct {
	Year      int                          `json:"year"`
	Month     int                          `json:"month"`
	Totals    Totals                       `json:"totals"`
	Breakdown []repositories.CategoryTotal `json:"breakdown"`
}

type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type Service interface {
	Monthly(ctx context.Context, userID uint, year, month int) (*MonthlySummary, error)
}

type service struct {
	repo repositories.TransactionRepository
}

func NewService(repo repositories.TransactionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Monthly(ctx context.Context, userID uint, year, month int) (*MonthlySummary, error) {
	now := time.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	typeTotals, err := s.repo.TotalsByType(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range typeTotals {
		switch t.Type {
		case models.TransactionTypeIncome:
			totals.Income = t.Total
		case models.TransactionTypeExpense:
			totals.Expense = t.Total
		}
	}

	breakdown, err := s.repo.CategoryBreakdown(ctx, userID, start, end, breakdownLimit)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Year:      year,
		Month:     month,
		Totals:    totals,
		Breakdown: breakdown,
	}, nil
}
