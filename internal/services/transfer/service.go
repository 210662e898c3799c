// Package transfer implements account-to-account money movement. A transfer
// debits the source account by amount + fee, credits the destination by the
// amount exactly, and records a debit ledger entry, a transfer row and a
// credit ledger entry, all inside one database transaction with row locks on
// both accounts.
package transfer

import (
	"context"
	"errors"
	"log"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// FeeCalculator prices a transfer amount.
type FeeCalculator interface {
	CalculateFee(amount decimal.Decimal) decimal.Decimal
}

// Config tunes the engine.
type Config struct {
	// Timeout bounds the unit of work; on expiry the transaction is rolled
	// back and the caller gets a retryable failure.
	Timeout time.Duration
}

type service struct {
	store   repositories.LedgerStore
	reader  repositories.TransferReader
	fees    FeeCalculator
	pins    PinVerifier
	cache   AccountCache
	timeout time.Duration
}

// NewService creates the transfer service. The cache is optional; every other
// dependency is required.
func NewService(store repositories.LedgerStore, reader repositories.TransferReader, fees FeeCalculator, pins PinVerifier, cache AccountCache, cfg Config) Service {
	if store == nil {
		panic("store is required")
	}
	if reader == nil {
		panic("reader is required")
	}
	if fees == nil {
		panic("fee calculator is required")
	}
	if pins == nil {
		panic("pin verifier is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &service{
		store:   store,
		reader:  reader,
		fees:    fees,
		pins:    pins,
		cache:   cache,
		timeout: timeout,
	}
}

// CreateTransfer executes one transfer end to end. On any failure the unit of
// work is rolled back and neither balance nor ledger shows a trace of the
// attempt.
func (s *service) CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.pins.VerifyTransferPIN(ctx, input.UserID, input.PIN); err != nil {
		return nil, ErrInvalidPIN
	}

	fee := s.fees.CalculateFee(input.Amount)
	total := input.Amount.Add(fee)

	reference := input.Reference
	if reference == "" {
		reference = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var result *TransferResult
	err := s.store.ExecuteInTransaction(ctx, func(tx repositories.LedgerStore) error {
		accounts, err := tx.AccountsForUpdate(ctx, input.FromAccountID, input.ToAccountID)
		if err != nil {
			return err
		}

		source := accounts[input.FromAccountID]
		if source == nil || source.UserID != input.UserID || !source.IsActive() {
			return ErrAccountNotAuthorized
		}

		if source.Balance.LessThan(total) {
			return ErrInsufficientFunds
		}

		dest := accounts[input.ToAccountID]
		if dest == nil || !dest.IsActive() {
			return ErrAccountNotFound
		}

		if err := tx.ApplyBalanceDelta(ctx, source.ID, total.Neg()); err != nil {
			return err
		}
		if err := tx.ApplyBalanceDelta(ctx, dest.ID, input.Amount); err != nil {
			return err
		}

		now := time.Now().UTC()

		debit := &models.Transaction{
			UserID:      source.UserID,
			AccountID:   &source.ID,
			Type:        models.TransactionTypeTransfer,
			Amount:      total.Neg(),
			Description: input.Description,
			Reference:   reference,
			Status:      models.TransactionStatusCompleted,
			OccurredAt:  now,
		}
		if err := tx.CreateLedgerEntry(ctx, debit); err != nil {
			return err
		}

		transferRow := &models.Transfer{
			TransactionID: debit.ID,
			FromAccountID: source.ID,
			ToAccountID:   dest.ID,
			Fee:           fee,
			Status:        models.TransferStatusCompleted,
			CompletedAt:   &now,
		}
		if err := tx.CreateTransfer(ctx, transferRow); err != nil {
			return err
		}

		credit := &models.Transaction{
			UserID:      dest.UserID,
			AccountID:   &dest.ID,
			TransferID:  &transferRow.ID,
			Type:        models.TransactionTypeTransfer,
			Amount:      input.Amount,
			Description: input.Description,
			Reference:   reference,
			Status:      models.TransactionStatusCompleted,
			OccurredAt:  now,
		}
		if err := tx.CreateLedgerEntry(ctx, credit); err != nil {
			return err
		}

		result = &TransferResult{
			TransferID:    transferRow.ID,
			TransactionID: debit.ID,
			FromAccountID: source.ID,
			ToAccountID:   dest.ID,
			Amount:        input.Amount,
			Fee:           fee,
			TotalAmount:   total,
			Status:        models.TransferStatusCompleted,
			Reference:     reference,
			CreatedAt:     now,
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAccounts(context.WithoutCancel(ctx), input.FromAccountID, input.ToAccountID); err != nil {
			log.Printf("failed to invalidate account cache after transfer %d: %v", result.TransferID, err)
		}
	}

	return result, nil
}

// classify keeps business failures intact and folds everything else into the
// retryable ErrTransferFailed.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrAccountNotAuthorized),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrValidation):
		return err
	default:
		log.Printf("transfer aborted: %v", err)
		return ErrTransferFailed
	}
}
