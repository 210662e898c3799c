// Package routes wires repositories, services and handlers onto the Fiber app.
package routes

import (
	"time"

	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/cache"
	"fintrack/internal/services/auth"
	"fintrack/internal/services/category"
	"fintrack/internal/services/fee"
	"fintrack/internal/services/funding"
	"fintrack/internal/services/report"
	"fintrack/internal/services/transaction"
	"fintrack/internal/services/transfer"
	"fintrack/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the dependency graph and registers every route. The
// cache service may be nil when Redis is unavailable; everything degrades to
// database-only operation.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	ledgerStore := repositories.NewLedgerStore(db)
	transferReader := repositories.NewTransferReader(db)

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo, accountRepo)
	categoryService := category.NewService(categoryRepo)
	transactionService := transaction.NewService(transactionRepo)
	reportService := report.NewService(transactionRepo)
	fundingService := funding.NewService(ledgerStore)

	var accountCache transfer.AccountCache
	if cacheService != nil {
		accountCache = cacheService
	}
	transferService := transfer.NewService(
		ledgerStore,
		transferReader,
		fee.NewCalculator(),
		authService,
		accountCache,
		transfer.Config{Timeout: 10 * time.Second},
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	accountHandler := handlers.NewAccountHandler(accountRepo, cacheService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	transferHandler := handlers.NewTransferHandler(transferService)
	fundingHandler := handlers.NewFundingHandler(fundingService, accountCache)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid access token.
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Post("/pin", authHandler.SetTransferPIN)
	protected.Get("/me", authHandler.Me)

	protected.Get("/accounts", accountHandler.ListAccounts)
	protected.Get("/accounts/:id", accountHandler.GetAccount)
	protected.Post("/accounts/deposit", fundingHandler.Deposit)

	protected.Post("/categories", categoryHandler.Create)
	protected.Get("/categories", categoryHandler.List)
	protected.Put("/categories/:id", categoryHandler.Rename)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Post("/transactions", transactionHandler.Create)
	protected.Get("/transactions", transactionHandler.List)
	protected.Get("/transactions/:id", transactionHandler.Get)
	protected.Put("/transactions/:id", transactionHandler.Update)
	protected.Delete("/transactions/:id", transactionHandler.Delete)

	protected.Get("/reports/monthly", reportHandler.Monthly)

	// "/transfers/recent" must be registered before the ":id" route so the
	// literal path wins.
	protected.Post("/transfers", transferHandler.CreateTransfer)
	protected.Get("/transfers", transferHandler.GetTransfers)
	protected.Get("/transfers/recent", transferHandler.GetRecentTransfers)
	protected.Get("/transfers/:id", transferHandler.GetTransferByID)
}
