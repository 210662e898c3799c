// Package handlers translates HTTP requests into service calls and service
// results into the JSON envelope.
package handlers

import (
	"errors"
	"log"

	"fintrack/internal/middleware"
	"fintrack/internal/services/auth"
	"fintrack/internal/services/user"
	"fintrack/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
	userService user.Service
}

func NewAuthHandler(authService auth.Service, userService user.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input user.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	newUser, account, err := h.userService.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return response.Error(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("registration failed: %v", err)
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, fiber.Map{
		"user":    newUser,
		"account": account,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	loggedIn, accessToken, refreshToken, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		return response.Unauthorized(c, "invalid credentials")
	}

	return response.Success(c, fiber.Map{
		"user":          loggedIn,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return response.BadRequest(c, "refresh_token is required")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "invalid refresh token")
	}

	return response.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if err := h.authService.Logout(claims.UserID); err != nil {
		log.Printf("logout failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "logout failed")
	}
	return response.Success(c, fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := h.authService.ChangePassword(claims.UserID, input.OldPassword, input.NewPassword); err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, fiber.Map{"message": "password changed"})
}

func (h *AuthHandler) SetTransferPIN(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	var input struct {
		Password string `json:"password"`
		PIN      string `json:"pin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := h.authService.SetTransferPIN(claims.UserID, input.Password, input.PIN); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Forbidden(c, "invalid password")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, fiber.Map{"message": "transfer pin set"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	current, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return response.NotFound(c, "user not found")
	}
	return response.Success(c, current)
}
