// Package funding tops up an account from an external card. The card is
// tokenized with Stripe first; the balance credit and its deposit ledger
// entry then run in one unit of work against the ledger store.
package funding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

var (
	ErrInvalidAmount   = errors.New("deposit amount must be positive")
	ErrInvalidCard     = errors.New("card failed validation")
	ErrAccountNotFound = errors.New("account not found or not authorized")
	ErrDepositFailed   = errors.New("deposit failed")
)

// Card is the card detail submitted for a deposit.
type Card struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc"`
}

// DepositInput funds one account from one card.
type DepositInput struct {
	UserID    uint
	AccountID uint            `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Card      Card            `json:"card"`
}

// DepositResult is the committed outcome.
type DepositResult struct {
	TransactionID uint            `json:"transaction_id"`
	AccountID     uint            `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	CardType      string          `json:"card_type"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Service interface {
	Deposit(ctx context.Context, input DepositInput) (*DepositResult, error)
}

type service struct {
	store repositories.LedgerStore
}

func NewService(store repositories.LedgerStore) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{store: store}
}

func (s *service) Deposit(ctx context.Context, input DepositInput) (*DepositResult, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	cardToken, err := tokenizeCard(input.Card)
	if err != nil {
		return nil, err
	}

	var result *DepositResult
	err = s.store.ExecuteInTransaction(ctx, func(tx repositories.LedgerStore) error {
		accounts, err := tx.AccountsForUpdate(ctx, input.AccountID)
		if err != nil {
			return err
		}

		account := accounts[input.AccountID]
		if account == nil || account.UserID != input.UserID || !account.IsActive() {
			return ErrAccountNotFound
		}

		if err := tx.ApplyBalanceDelta(ctx, account.ID, input.Amount); err != nil {
			return err
		}

		now := time.Now().UTC()
		entry := &models.Transaction{
			UserID:      account.UserID,
			AccountID:   &account.ID,
			Type:        models.TransactionTypeDeposit,
			Amount:      input.Amount,
			Description: fmt.Sprintf("Card deposit (%s)", cardToken.cardType),
			Reference:   cardToken.id,
			Status:      models.TransactionStatusCompleted,
			OccurredAt:  now,
		}
		if err := tx.CreateLedgerEntry(ctx, entry); err != nil {
			return err
		}

		result = &DepositResult{
			TransactionID: entry.ID,
			AccountID:     account.ID,
			Amount:        input.Amount,
			CardType:      cardToken.cardType,
			Status:        models.TransactionStatusCompleted,
			CreatedAt:     now,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, err
		}
		log.Printf("deposit aborted: %v", err)
		return nil, ErrDepositFailed
	}

	return result, nil
}

type cardToken struct {
	id       string
	cardType string
}

func tokenizeCard(card Card) (*cardToken, error) {
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")

	if !luhnValid(card.Number) {
		return nil, ErrInvalidCard
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   &card.Number,
			ExpMonth: &card.ExpiryMonth,
			ExpYear:  &card.ExpiryYear,
			CVC:      &card.CVC,
		},
	}
	stripeToken, err := token.New(params)
	if err != nil {
		log.Printf("stripe tokenization error: %v", err)
		return nil, fmt.Errorf("card tokenization failed: %w", ErrInvalidCard)
	}

	return &cardToken{
		id:       stripeToken.ID,
		cardType: string(stripeToken.Card.Brand),
	}, nil
}

// luhnValid runs the Luhn checksum over a card number.
func luhnValid(cardNumber string) bool {
	if cardNumber == "" {
		return false
	}

	var sum int
	shouldDouble := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		if cardNumber[i] < '0' || cardNumber[i] > '9' {
			return false
		}
		digit := int(cardNumber[i] - '0')
		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}
	return sum%10 == 0
}
