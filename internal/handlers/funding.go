package handlers

import (
	"errors"
	"log"

	"fintrack/internal/middleware"
	"fintrack/internal/services/funding"
	"fintrack/internal/services/transfer"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type FundingHandler struct {
	fundingService funding.Service
	accountCache   transfer.AccountCache
}

func NewFundingHandler(fundingService funding.Service, accountCache transfer.AccountCache) *FundingHandler {
	return &FundingHandler{
		fundingService: fundingService,
		accountCache:   accountCache,
	}
}

// Deposit funds an account from an external card.
func (h *FundingHandler) Deposit(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input funding.DepositInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	input.UserID = claims.UserID

	result, err := h.fundingService.Deposit(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, funding.ErrInvalidAmount), errors.Is(err, funding.ErrInvalidCard):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, funding.ErrAccountNotFound):
			return response.NotFound(c, err.Error())
		default:
			log.Printf("deposit failed for user %d: %v", claims.UserID, err)
			return response.ServerError(c, "deposit failed")
		}
	}

	if h.accountCache != nil {
		if err := h.accountCache.InvalidateAccounts(c.Context(), result.AccountID); err != nil {
			log.Printf("cache invalidation failed after deposit: %v", err)
		}
	}

	return response.Created(c, result)
}
