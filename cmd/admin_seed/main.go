// Package main seeds the back office: it creates the initial ADMIN employee
// and, optionally, a demo customer with a wallet for local development.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"walletdesk/internal/config"
	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
	"walletdesk/internal/routes"
	"walletdesk/internal/services/customer"
	"walletdesk/internal/services/employee"
	"walletdesk/internal/services/wallet"
)

func main() {
	config.LoadEnv()

	adminCode := os.Getenv("ADMIN_CODE")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminCode == "" || adminPassword == "" {
		log.Fatal("ADMIN_CODE and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close redis connection: %v", err)
			}
		}
	}()

	ctx := context.Background()

	employeeRepo := repositories.NewEmployeeRepository(repositories.DB)
	employeeService := employee.NewService(employeeRepo, routes.Verifier())

	_, err := employeeService.Create(ctx, adminCode, "System", "Admin", adminPassword, models.RoleAdmin)
	switch {
	case err == nil:
		log.Printf("Created admin employee %q", adminCode)
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		log.Printf("Admin employee %q already exists", adminCode)
	default:
		log.Fatalf("Failed to create admin employee: %v", err)
	}

	if os.Getenv("SEED_DEMO") != "true" {
		return
	}

	customerRepo := repositories.NewCustomerRepository(repositories.DB)
	walletRepo := repositories.NewWalletRepository(repositories.DB)
	customerService := customer.NewService(customerRepo)
	walletService := wallet.NewService(walletRepo, customerRepo, nil)

	demo, err := customerService.Create(ctx, "11111111111", "Demo", "Customer")
	if errors.Is(err, domain.ErrDuplicateIdentifier) {
		log.Println("Demo customer already exists")
		return
	}
	if err != nil {
		log.Fatalf("Failed to create demo customer: %v", err)
	}

	if _, err := walletService.Create(ctx, demo.ID, "Everyday TRY", models.CurrencyTRY); err != nil {
		log.Fatalf("Failed to create demo wallet: %v", err)
	}
	log.Printf("Seeded demo customer %d with a TRY wallet", demo.ID)
}
