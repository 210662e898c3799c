package transaction

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

type fakeTransactionRepo struct {
	nextID  uint
	records map[uint]*models.Transaction
}

func newFakeRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1, records: make(map[uint]*models.Transaction)}
}

func (f *fakeTransactionRepo) Create(tx *models.Transaction) error {
	tx.ID = f.nextID
	f.nextID++
	copied := *tx
	f.records[tx.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) GetOwned(id, userID uint) (*models.Transaction, error) {
	tx, ok := f.records[id]
	if !ok || tx.UserID != userID {
		return nil, repositories.ErrTransactionNotFound
	}
	copied := *tx
	return &copied, nil
}

func (f *fakeTransactionRepo) ListByUser(_ context.Context, userID uint, filter repositories.TransactionFilter) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.records {
		if tx.UserID != userID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		out = append(out, *tx)
	}
	return out, nil
}

func (f *fakeTransactionRepo) Update(tx *models.Transaction) error {
	copied := *tx
	f.records[tx.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) Delete(id, userID uint) error {
	tx, ok := f.records[id]
	if !ok || tx.UserID != userID {
		return repositories.ErrTransactionNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeTransactionRepo) TotalsByType(context.Context, uint, time.Time, time.Time) ([]repositories.TypeTotal, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) CategoryBreakdown(context.Context, uint, time.Time, time.Time, int) ([]repositories.CategoryTotal, error) {
	return nil, nil
}

func TestCreateRecordsExpense(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	categoryID := uint(3)
	tx, err := svc.Create(context.Background(), 1, CreateInput{
		Amount:     decimal.RequireFromString("42.50"),
		Type:       "expense",
		CategoryID: &categoryID,
		Note:       "groceries",
	})
	require.NoError(t, err)

	assert.NotZero(t, tx.ID)
	assert.Equal(t, uint(1), tx.UserID)
	assert.Equal(t, "expense", tx.Type)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
	assert.False(t, tx.OccurredAt.IsZero())
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"zero amount", CreateInput{Amount: decimal.Zero, Type: "expense"}},
		{"negative amount", CreateInput{Amount: decimal.RequireFromString("-5"), Type: "income"}},
		{"bad type", CreateInput{Amount: decimal.RequireFromString("10"), Type: "transfer"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tc.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateHonorsOccurredAt(t *testing.T) {
	svc := NewService(newFakeRepo())

	when := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	tx, err := svc.Create(context.Background(), 1, CreateInput{
		Amount:     decimal.RequireFromString("10"),
		Type:       "income",
		OccurredAt: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, when, tx.OccurredAt)
}

func TestUpdateOwnedOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	tx, err := svc.Create(context.Background(), 1, CreateInput{
		Amount: decimal.RequireFromString("10"),
		Type:   "expense",
	})
	require.NoError(t, err)

	_, err = svc.Update(2, tx.ID, UpdateInput{Amount: decimal.RequireFromString("20")})
	assert.ErrorIs(t, err, repositories.ErrTransactionNotFound)

	updated, err := svc.Update(1, tx.ID, UpdateInput{Amount: decimal.RequireFromString("20"), Note: "revised"})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, "revised", updated.Description)
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepo())
	assert.ErrorIs(t, svc.Delete(1, 99), repositories.ErrTransactionNotFound)
}
