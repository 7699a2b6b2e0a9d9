package utils

import (
	"errors"

	"walletdesk/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a JSON response with status 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// DomainError maps a domain failure onto the matching transport response.
// Anything outside the taxonomy is a store failure: fatal for this request,
// opaque to the client.
func DomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return Respond(c, fiber.StatusNotFound, fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		return Respond(c, fiber.StatusConflict, fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrInvalidAmount):
		return Respond(c, fiber.StatusUnprocessableEntity, fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds):
		return Respond(c, fiber.StatusUnprocessableEntity, fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": "unauthenticated"})
	case errors.Is(err, domain.ErrForbidden):
		return Respond(c, fiber.StatusForbidden, fiber.Map{"error": err.Error()})
	default:
		return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": "internal error"})
	}
}
