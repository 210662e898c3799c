package handlers

import (
	"errors"
	"log"
	"strconv"

	"fintrack/internal/middleware"
	"fintrack/internal/services/transfer"
	"fintrack/internal/utils/pagination"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	transferService transfer.Service
}

func NewTransferHandler(transferService transfer.Service) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// CreateTransfer executes an account-to-account transfer. The requesting user
// comes from the auth claims; the body never decides who is moving money.
func (h *TransferHandler) CreateTransfer(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input transfer.CreateTransferInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	input.UserID = claims.UserID

	result, err := h.transferService.CreateTransfer(c.Context(), input)
	if err != nil {
		return transferError(c, err)
	}

	return response.Created(c, result)
}

// transferError maps the engine's sentinel errors onto HTTP statuses.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, transfer.ErrValidation):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, transfer.ErrInsufficientFunds):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, transfer.ErrAccountNotAuthorized):
		return response.Forbidden(c, err.Error())
	case errors.Is(err, transfer.ErrInvalidPIN):
		return response.Forbidden(c, err.Error())
	case errors.Is(err, transfer.ErrAccountNotFound):
		return response.NotFound(c, err.Error())
	default:
		log.Printf("transfer failed: %v", err)
		return response.ServerError(c, transfer.ErrTransferFailed.Error())
	}
}

func (h *TransferHandler) GetTransfers(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	params := pagination.ParseFromRequest(c)
	status := c.Query("status")

	transfers, meta, err := h.transferService.GetTransfersByUser(c.Context(), claims.UserID, params.Page, params.Limit, status)
	if err != nil {
		log.Printf("transfer listing failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to list transfers")
	}

	return response.Success(c, fiber.Map{
		"transfers":  transfers,
		"pagination": meta,
	})
}

func (h *TransferHandler) GetRecentTransfers(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	transfers, err := h.transferService.GetRecentTransfers(c.Context(), claims.UserID, limit)
	if err != nil {
		log.Printf("recent transfers failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to list recent transfers")
	}

	return response.Success(c, transfers)
}

func (h *TransferHandler) GetTransferByID(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid transfer id")
	}

	detail, err := h.transferService.GetTransferByID(c.Context(), uint(id), claims.UserID)
	if err != nil {
		log.Printf("transfer lookup failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "failed to get transfer")
	}
	if detail == nil {
		return response.NotFound(c, "transfer not found")
	}

	return response.Success(c, detail)
}
