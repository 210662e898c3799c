package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services/transaction"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input transaction.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	tx, err := h.transactionService.Create(c.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		log.Printf("transaction create failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to create transaction")
	}

	return response.Created(c, tx)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	filter := repositories.TransactionFilter{Type: c.Query("type")}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = &t
		}
	}

	transactions, err := h.transactionService.List(c.Context(), claims.UserID, filter)
	if err != nil {
		log.Printf("transaction listing failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to list transactions")
	}

	return response.Success(c, transactions)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	tx, err := h.transactionService.Get(claims.UserID, uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return response.NotFound(c, "transaction not found")
		}
		return response.ServerError(c, "failed to get transaction")
	}

	return response.Success(c, tx)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	var input transaction.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	tx, err := h.transactionService.Update(claims.UserID, uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTransactionNotFound):
			return response.NotFound(c, "transaction not found")
		case errors.Is(err, transaction.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "failed to update transaction")
		}
	}

	return response.Success(c, tx)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	if err := h.transactionService.Delete(claims.UserID, uint(id)); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return response.NotFound(c, "transaction not found")
		}
		return response.ServerError(c, "failed to delete transaction")
	}

	return response.Success(c, fiber.Map{"message": "transaction deleted"})
}
