package handlers

import (
	"walletdesk/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "connected"
	if repositories.CacheService == nil || repositories.CacheService.HealthCheck(c.Context()) != nil {
		redisStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
