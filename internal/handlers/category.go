package handlers

import (
	"errors"
	"strconv"

	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services/category"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService category.Service
}

func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.categoryService.Create(claims.UserID, input.Name, input.Type)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateCategory):
			return response.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, category.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "failed to create category")
		}
	}

	return response.Created(c, created)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	categories, err := h.categoryService.List(claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to list categories")
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid category id")
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	renamed, err := h.categoryService.Rename(uint(id), claims.UserID, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return response.NotFound(c, "category not found")
		case errors.Is(err, category.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "failed to rename category")
		}
	}

	return response.Success(c, renamed)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid category id")
	}

	if err := h.categoryService.Delete(uint(id), claims.UserID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return response.NotFound(c, "category not found")
		}
		return response.ServerError(c, "failed to delete category")
	}

	return response.Success(c, fiber.Map{"message": "category deleted"})
}
