package funding

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// nopStore satisfies the ledger store contract for paths that fail before any
// store access.
type nopStore struct{}

func (nopStore) ExecuteInTransaction(ctx context.Context, fn func(repositories.LedgerStore) error) error {
	return fn(nopStore{})
}

func (nopStore) AccountsForUpdate(context.Context, ...uint) (map[uint]*models.Account, error) {
	return map[uint]*models.Account{}, nil
}

func (nopStore) ApplyBalanceDelta(context.Context, uint, decimal.Decimal) error { return nil }
func (nopStore) CreateLedgerEntry(context.Context, *models.Transaction) error   { return nil }
func (nopStore) CreateTransfer(context.Context, *models.Transfer) error         { return nil }

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(nopStore{})

	for _, amount := range []string{"0", "-10"} {
		_, err := svc.Deposit(context.Background(), DepositInput{
			UserID:    1,
			AccountID: 1,
			Amount:    decimal.RequireFromString(amount),
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestDepositRejectsBadCardNumber(t *testing.T) {
	svc := NewService(nopStore{})

	_, err := svc.Deposit(context.Background(), DepositInput{
		UserID:    1,
		AccountID: 1,
		Amount:    decimal.RequireFromString("50.00"),
		Card:      Card{Number: "4242424242424241", ExpiryMonth: "12", ExpiryYear: "2030", CVC: "123"},
	})
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestLuhnValid(t *testing.T) {
	valid := []string{
		"4242424242424242",
		"4000056655665556",
		"5555555555554444",
		"378282246310005",
	}
	for _, number := range valid {
		assert.True(t, luhnValid(number), number)
	}

	invalid := []string{
		"",
		"4242424242424241",
		"1234567890123456",
		"4242-4242-4242-4242",
		"42424242424242ab",
	}
	for _, number := range invalid {
		assert.False(t, luhnValid(number), number)
	}
}
