package repositories

import (
	"context"
	"fmt"
	"sort"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerStore is the transactional unit of work used by the transfer engine
// and the funding service. ExecuteInTransaction runs fn against a store bound
// to a database transaction; everything fn does commits or rolls back
// together.
type LedgerStore interface {
	ExecuteInTransaction(ctx context.Context, fn func(LedgerStore) error) error
	// AccountsForUpdate row-locks the requested accounts, acquiring locks in
	// ascending id order. Missing accounts are simply absent from the result.
	AccountsForUpdate(ctx context.Context, ids ...uint) (map[uint]*models.Account, error)
	ApplyBalanceDelta(ctx context.Context, accountID uint, delta decimal.Decimal) error
	CreateLedgerEntry(ctx context.Context, entry *models.Transaction) error
	CreateTransfer(ctx context.Context, transfer *models.Transfer) error
}

type ledgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) LedgerStore {
	return &ledgerStore{db: db}
}

func (s *ledgerStore) ExecuteInTransaction(ctx context.Context, fn func(LedgerStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerStore{db: tx})
	})
}

func (s *ledgerStore) AccountsForUpdate(ctx context.Context, ids ...uint) (map[uint]*models.Account, error) {
	ordered := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}
	// Lock in ascending id order so two mirror-image transfers cannot
	// deadlock each other.
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	accounts := make(map[uint]*models.Account, len(ordered))
	for _, id := range ordered {
		var account models.Account
		err := s.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, fmt.Errorf("failed to lock account %d: %w", id, err)
		}
		accounts[account.ID] = &account
	}
	return accounts, nil
}

func (s *ledgerStore) ApplyBalanceDelta(ctx context.Context, accountID uint, delta decimal.Decimal) error {
	result := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", accountID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *ledgerStore) CreateLedgerEntry(ctx context.Context, entry *models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

func (s *ledgerStore) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	if err := s.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}
