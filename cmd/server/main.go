// Package main is the entry point for the API server. It initializes the
// databases, configures the HTTP middleware stack, mounts the routes and
// starts listening.
package main

import (
	"context"
	"log"
	"time"

	"walletdesk/internal/config"
	"walletdesk/internal/repositories"
	"walletdesk/internal/routes"
	"walletdesk/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	// Stale wallet reads from a previous run are worthless after restart.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush redis cache: %v", err)
		}
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close redis connection: %v", err)
			}
		}
	}()

	if _, ok := routes.Verifier().(auth.InsecureVerifier); ok {
		if config.IsProduction() {
			log.Fatal("refusing to start: credential verification is disabled; set AUTH_VERIFIER=bcrypt")
		}
		log.Println("WARNING: credential verification is disabled; any password is accepted. Set AUTH_VERIFIER=bcrypt to enforce passwords.")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/v1/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
