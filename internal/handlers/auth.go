// Package handlers contains the HTTP layer: thin fiber handlers that parse
// and validate payloads, run the permission check for the operation, call
// the matching service and translate domain failures to status codes.
package handlers

import (
	"walletdesk/internal/services/auth"
	"walletdesk/internal/utils"
	"walletdesk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Login authenticates by national id or employee code and returns a token
// pair plus the resolved principal.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"identity": fiber.Map{
			"kind":        result.Identity.Kind,
			"customer_id": result.Identity.CustomerID,
			"employee_id": result.Identity.EmployeeID,
			"role":        result.Identity.Role,
		},
	})
}

// Refresh rotates a refresh token into a fresh pair.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}
