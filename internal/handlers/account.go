package handlers

import (
	"errors"
	"log"
	"strconv"

	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/cache"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accountRepo repositories.AccountRepository
	cache       *cache.CacheService
}

func NewAccountHandler(accountRepo repositories.AccountRepository, cacheService *cache.CacheService) *AccountHandler {
	return &AccountHandler{
		accountRepo: accountRepo,
		cache:       cacheService,
	}
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	accounts, err := h.accountRepo.GetByUserID(claims.UserID)
	if err != nil {
		log.Printf("account listing failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to list accounts")
	}

	return response.Success(c, accounts)
}

// GetAccount serves the account from cache when possible, falling back to the
// database and repopulating the cache on a miss.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid account id")
	}

	if h.cache != nil {
		if cached, found, err := h.cache.GetAccount(c.Context(), uint(id)); err == nil && found {
			if cached.UserID != claims.UserID {
				return response.NotFound(c, "account not found")
			}
			return response.Success(c, cached)
		}
	}

	account, err := h.accountRepo.GetOwned(uint(id), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return response.NotFound(c, "account not found")
		}
		log.Printf("account lookup failed: %v", err)
		return response.ServerError(c, "failed to get account")
	}

	if h.cache != nil {
		if err := h.cache.CacheAccount(c.Context(), account); err != nil {
			log.Printf("account cache write failed: %v", err)
		}
	}

	return response.Success(c, account)
}
