// Package routes defines the API routing configuration. It wires
// repositories into services, services into handlers, and handlers onto
// their paths.
package routes

import (
	"walletdesk/internal/config"
	"walletdesk/internal/handlers"
	"walletdesk/internal/middleware"
	"walletdesk/internal/repositories"
	"walletdesk/internal/services/auth"
	"walletdesk/internal/services/customer"
	"walletdesk/internal/services/employee"
	"walletdesk/internal/services/ledger"
	"walletdesk/internal/services/transaction"
	"walletdesk/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// Verifier selects the credential verifier from AUTH_VERIFIER. The default
// accepts any password, matching how this system has always behaved.
func Verifier() auth.CredentialVerifier {
	if config.GetEnv("AUTH_VERIFIER", "insecure") == "bcrypt" {
		return auth.BcryptVerifier{}
	}
	return auth.InsecureVerifier{}
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	customerRepo := repositories.NewCustomerRepository(repositories.DB)
	employeeRepo := repositories.NewEmployeeRepository(repositories.DB)
	walletRepo := repositories.NewWalletRepository(repositories.DB)
	transactionRepo := repositories.NewTransactionRepository(repositories.DB)

	// Services
	verifier := Verifier()
	authService := auth.NewService(customerRepo, employeeRepo, verifier)
	customerService := customer.NewService(customerRepo)
	employeeService := employee.NewService(employeeRepo, verifier)
	ledgerService := ledger.NewService(walletRepo, repositories.CacheService, nil)
	walletService := wallet.NewService(walletRepo, customerRepo, repositories.CacheService)
	transactionService := transaction.NewService(transactionRepo, walletRepo, ledgerService, repositories.CacheService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	walletHandler := handlers.NewWalletHandler(walletService, ledgerService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, walletService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api/v1", middleware.OptionalAuth)

	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)

	api.Post("/customers", customerHandler.Create)
	api.Get("/customers", customerHandler.List)
	api.Get("/customers/:id", customerHandler.Get)
	api.Put("/customers/:id", customerHandler.Update)
	api.Delete("/customers/:id", customerHandler.Delete)
	api.Get("/customers/:customerId/wallets", walletHandler.ListByCustomer)
	api.Get("/customers/:customerId/transactions", transactionHandler.ListByCustomer)

	api.Post("/employees", employeeHandler.Create)
	api.Get("/employees", employeeHandler.List)
	api.Get("/employees/:id", employeeHandler.Get)
	api.Put("/employees/:id", employeeHandler.Update)
	api.Delete("/employees/:id", employeeHandler.Delete)

	api.Post("/wallets", walletHandler.Create)
	api.Get("/wallets", walletHandler.List)
	api.Get("/wallets/:id", walletHandler.Get)
	api.Patch("/wallets/:id/status", walletHandler.UpdateStatus)
	api.Delete("/wallets/:id", walletHandler.Delete)
	api.Put("/wallets/:id/balance", walletHandler.SetBalance)
	api.Post("/wallets/:id/credit", walletHandler.Credit)
	api.Post("/wallets/:id/debit", walletHandler.Debit)
	api.Get("/wallets/:walletId/transactions", transactionHandler.ListByWallet)

	api.Post("/transactions/deposit", transactionHandler.CreateDeposit)
	api.Post("/transactions/withdraw", transactionHandler.CreateWithdraw)
	api.Get("/transactions", transactionHandler.List)
	api.Get("/transactions/pending", transactionHandler.ListPending)
	api.Get("/transactions/:id", transactionHandler.Get)
	api.Post("/transactions/:id/approve", transactionHandler.Approve)
	api.Post("/transactions/:id/deny", transactionHandler.Deny)
}
