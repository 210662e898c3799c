package transfer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/fee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreBroken = errors.New("store broken")

// fakeLedgerStore is an in-memory LedgerStore. ExecuteInTransaction snapshots
// state up front and restores it when fn fails, and a mutex serializes units
// of work the way row locks would.
type fakeLedgerStore struct {
	mu        sync.Mutex
	accounts  map[uint]*models.Account
	entries   []models.Transaction
	transfers []models.Transfer
	nextID    uint
	failOn    string // "balance" | "entry" | "transfer"
	accessed  bool
}

func newFakeStore(accounts ...*models.Account) *fakeLedgerStore {
	s := &fakeLedgerStore{accounts: make(map[uint]*models.Account), nextID: 1}
	for _, a := range accounts {
		copied := *a
		s.accounts[a.ID] = &copied
	}
	return s
}

func (s *fakeLedgerStore) ExecuteInTransaction(ctx context.Context, fn func(repositories.LedgerStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uint]*models.Account, len(s.accounts))
	for id, a := range s.accounts {
		copied := *a
		snapshot[id] = &copied
	}
	entryLen, transferLen, nextID := len(s.entries), len(s.transfers), s.nextID

	if err := fn(s); err != nil {
		s.accounts = snapshot
		s.entries = s.entries[:entryLen]
		s.transfers = s.transfers[:transferLen]
		s.nextID = nextID
		return err
	}
	return nil
}

func (s *fakeLedgerStore) AccountsForUpdate(ctx context.Context, ids ...uint) (map[uint]*models.Account, error) {
	s.accessed = true
	found := make(map[uint]*models.Account, len(ids))
	for _, id := range ids {
		if a, ok := s.accounts[id]; ok {
			copied := *a
			found[id] = &copied
		}
	}
	return found, nil
}

func (s *fakeLedgerStore) ApplyBalanceDelta(ctx context.Context, accountID uint, delta decimal.Decimal) error {
	if s.failOn == "balance" {
		return errStoreBroken
	}
	a, ok := s.accounts[accountID]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	a.Balance = a.Balance.Add(delta)
	return nil
}

func (s *fakeLedgerStore) CreateLedgerEntry(ctx context.Context, entry *models.Transaction) error {
	if s.failOn == "entry" {
		return errStoreBroken
	}
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeLedgerStore) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	if s.failOn == "transfer" {
		return errStoreBroken
	}
	transfer.ID = s.nextID
	s.nextID++
	s.transfers = append(s.transfers, *transfer)
	return nil
}

func (s *fakeLedgerStore) balance(id uint) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].Balance
}

type fakePinVerifier struct {
	pins map[uint]string
}

func (v *fakePinVerifier) VerifyTransferPIN(ctx context.Context, userID uint, pin string) error {
	if v.pins[userID] != pin {
		return errors.New("pin mismatch")
	}
	return nil
}

type nopReader struct{}

func (nopReader) ListByUser(ctx context.Context, userID uint, limit, offset int, status string) ([]models.TransferDetail, int64, error) {
	return nil, 0, nil
}
func (nopReader) GetByID(ctx context.Context, transferID, userID uint) (*models.TransferDetail, error) {
	return nil, nil
}
func (nopReader) Recent(ctx context.Context, userID uint, limit int) ([]models.TransferDetail, error) {
	return nil, nil
}

func account(id, userID uint, balance, status string) *models.Account {
	a := &models.Account{
		UserID:        userID,
		AccountNumber: fmt.Sprintf("ACC-%04d", id),
		Balance:       decimal.RequireFromString(balance),
		Currency:      "USD",
		Status:        status,
	}
	a.ID = id
	return a
}

func newTestService(store *fakeLedgerStore) Service {
	pins := &fakePinVerifier{pins: map[uint]string{1: "1234", 2: "5678"}}
	return NewService(store, nopReader{}, fee.NewCalculator(), pins, nil, Config{})
}

func validInput() CreateTransferInput {
	return CreateTransferInput{
		UserID:        1,
		FromAccountID: 10,
		ToAccountID:   20,
		Amount:        decimal.RequireFromString("100"),
		Description:   "rent",
		PIN:           "1234",
	}
}

func testAccounts() (*models.Account, *models.Account) {
	return account(10, 1, "1000", models.AccountStatusActive),
		account(20, 2, "50", models.AccountStatusActive)
}

func TestCreateTransfer_Success(t *testing.T) {
	src, dst := testAccounts()
	store := newFakeStore(src, dst)
	svc := newTestService(store)

	result, err := svc.CreateTransfer(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, models.TransferStatusCompleted, result.Status)
	assert.True(t, result.Fee.IsZero(), "amount 100 is in the free tier")
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("100")))
	assert.NotEmpty(t, result.Reference, "reference is generated when absent")

	assert.True(t, store.balance(10).Equal(decimal.RequireFromString("900")))
	assert.True(t, store.balance(20).Equal(decimal.RequireFromString("150")))

	require.Len(t, store.entries, 2)
	require.Len(t, store.transfers, 1)

	debit, credit := store.entries[0], store.entries[1]
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("-100")))
	assert.True(t, credit.Amount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, debit.Reference, credit.Reference)
	require.NotNil(t, credit.TransferID)
	assert.Equal(t, store.transfers[0].ID, *credit.TransferID)
	assert.Equal(t, debit.ID, store.transfers[0].TransactionID)
}

func TestCreateTransfer_FeeConservation(t *testing.T) {
	src, dst := testAccounts()
	src.Balance = decimal.RequireFromString("5000")
	store := newFakeStore(src, dst)
	svc := newTestService(store)

	input := validInput()
	input.Amount = decimal.RequireFromString("2000")

	result, err := svc.CreateTransfer(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, result.Fee.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("2002.50")))

	// source loses amount + fee, destination gains exactly the amount
	assert.True(t, store.balance(10).Equal(decimal.RequireFromString("2997.50")))
	assert.True(t, store.balance(20).Equal(decimal.RequireFromString("2050")))

	// the two entries sum to -fee: the fee leaves the two-account view
	sum := store.entries[0].Amount.Add(store.entries[1].Amount)
	assert.True(t, sum.Equal(result.Fee.Neg()))
}

func TestCreateTransfer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(src, dst *models.Account, in *CreateTransferInput)
		wantErr error
	}{
		{
			name: "insufficient funds counts the fee",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				src.Balance = decimal.RequireFromString("5000")
				in.Amount = decimal.RequireFromString("10000") // fee 5.00, total 10005
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "exact balance minus one cent",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				src.Balance = decimal.RequireFromString("99.99")
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "source owned by someone else",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				src.UserID = 99
			},
			wantErr: ErrAccountNotAuthorized,
		},
		{
			name: "source frozen",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				src.Status = models.AccountStatusFrozen
			},
			wantErr: ErrAccountNotAuthorized,
		},
		{
			name: "source missing",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				in.FromAccountID = 404
			},
			wantErr: ErrAccountNotAuthorized,
		},
		{
			name: "destination missing",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				in.ToAccountID = 404
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "destination closed",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				dst.Status = models.AccountStatusClosed
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "authorization outranks balance sufficiency",
			mutate: func(src, dst *models.Account, in *CreateTransferInput) {
				src.UserID = 99
				src.Balance = decimal.RequireFromString("1000000")
			},
			wantErr: ErrAccountNotAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := testAccounts()
			input := validInput()
			tt.mutate(src, dst, &input)

			store := newFakeStore(src, dst)
			svc := newTestService(store)

			result, err := svc.CreateTransfer(context.Background(), input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)

			// zero visible effect
			assert.True(t, store.balance(src.ID).Equal(src.Balance))
			assert.True(t, store.balance(dst.ID).Equal(dst.Balance))
			assert.Empty(t, store.entries)
			assert.Empty(t, store.transfers)
		})
	}
}

func TestCreateTransfer_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreateTransferInput)
	}{
		{"negative amount", func(in *CreateTransferInput) { in.Amount = decimal.RequireFromString("-50") }},
		{"zero amount", func(in *CreateTransferInput) { in.Amount = decimal.Zero }},
		{"below one cent", func(in *CreateTransferInput) { in.Amount = decimal.RequireFromString("0.005") }},
		{"missing source id", func(in *CreateTransferInput) { in.FromAccountID = 0 }},
		{"missing destination id", func(in *CreateTransferInput) { in.ToAccountID = 0 }},
		{"same account", func(in *CreateTransferInput) { in.ToAccountID = in.FromAccountID }},
		{"pin too short", func(in *CreateTransferInput) { in.PIN = "12" }},
		{"pin too long", func(in *CreateTransferInput) { in.PIN = "1234567" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := testAccounts()
			store := newFakeStore(src, dst)
			svc := newTestService(store)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateTransfer(context.Background(), input)
			require.ErrorIs(t, err, ErrValidation)
			assert.False(t, store.accessed, "validation failures must precede store access")
		})
	}
}

func TestCreateTransfer_WrongPIN(t *testing.T) {
	src, dst := testAccounts()
	store := newFakeStore(src, dst)
	svc := newTestService(store)

	input := validInput()
	input.PIN = "9999"

	_, err := svc.CreateTransfer(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidPIN)
	assert.False(t, store.accessed, "pin verification must precede any mutation")
}

func TestCreateTransfer_RollbackOnStoreError(t *testing.T) {
	for _, failOn := range []string{"balance", "entry", "transfer"} {
		t.Run("fail on "+failOn, func(t *testing.T) {
			src, dst := testAccounts()
			store := newFakeStore(src, dst)
			store.failOn = failOn
			svc := newTestService(store)

			_, err := svc.CreateTransfer(context.Background(), validInput())
			require.ErrorIs(t, err, ErrTransferFailed)

			assert.True(t, store.balance(10).Equal(decimal.RequireFromString("1000")))
			assert.True(t, store.balance(20).Equal(decimal.RequireFromString("50")))
			assert.Empty(t, store.entries)
			assert.Empty(t, store.transfers)
		})
	}
}

func TestCreateTransfer_ConcurrentDrain(t *testing.T) {
	src, dst := testAccounts()
	src.Balance = decimal.RequireFromString("150")
	store := newFakeStore(src, dst)
	svc := newTestService(store)

	// two transfers of 100 against a balance of 150: exactly one may win
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateTransfer(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrInsufficientFunds):
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, rejections)
	assert.True(t, store.balance(10).Equal(decimal.RequireFromString("50")))
	assert.True(t, store.balance(20).Equal(decimal.RequireFromString("150")))
}
