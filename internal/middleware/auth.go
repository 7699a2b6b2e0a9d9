// Package middleware provides HTTP middleware components for the application.
// It includes authentication and other request processing middleware used
// with the fiber web framework.
package middleware

import (
	"strings"

	"walletdesk/internal/models"
	"walletdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the fiber.Ctx locals key under which the resolved caller
// identity is stored.
const IdentityKey = "identity"

// OptionalAuth resolves a bearer token into an Identity when one is present
// and stores it in the request locals. Requests without a token proceed as
// Anonymous; requests with an invalid token are rejected. Per-operation
// permission checks happen in the services, not here.
func OptionalAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		c.Locals(IdentityKey, models.Anonymous())
		return c.Next()
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if claims.TokenType != utils.TokenTypeAccess {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(IdentityKey, claims.Identity())
	return c.Next()
}

// CallerIdentity reads the resolved identity from the request locals,
// defaulting to Anonymous.
func CallerIdentity(c *fiber.Ctx) models.Identity {
	if id, ok := c.Locals(IdentityKey).(models.Identity); ok {
		return id
	}
	return models.Anonymous()
}
