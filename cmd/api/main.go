package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/sohhamm/personal-finance-app/internal/domain/usecase/auth"
	budgetUseCase "github.com/sohhamm/personal-finance-app/internal/domain/usecase/budget"
	overviewUseCase "github.com/sohhamm/personal-finance-app/internal/domain/usecase/overview"
	potUseCase "github.com/sohhamm/personal-finance-app/internal/domain/usecase/pot"
	recurringBillUseCase "github.com/sohhamm/personal-finance-app/internal/domain/usecase/recurringbill"
	transactionUseCase "github.com/sohhamm/personal-finance-app/internal/domain/usecase/transaction"

	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/handler"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/routes"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/cache"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/database"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/database/migration"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/logger"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/repository"
	timeProvider "github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/time"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManagerWithTimeProvider(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	budgetRepo := repository.NewBudgetRepository(dbManager.DB(), appLogger)
	potRepo := repository.NewPotRepository(dbManager.DB(), appLogger)
	billRepo := repository.NewRecurringBillRepository(dbManager.DB(), appLogger)

	// Initialize use cases
	tokens := authUseCase.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry, tp)
	auth := authUseCase.NewAuthUseCase(userRepo, tokens, tp, appLogger)
	transactions := transactionUseCase.NewTransactionUseCase(transactionRepo, tp, appLogger)
	budgets := budgetUseCase.NewBudgetUseCase(budgetRepo, transactionRepo, tp, appLogger)
	pots := potUseCase.NewPotUseCase(potRepo, tp, appLogger)
	bills := recurringBillUseCase.NewRecurringBillUseCase(billRepo, transactionRepo, tp, appLogger)
	overview := overviewUseCase.NewOverviewUseCase(transactionRepo, budgetRepo, potRepo, billRepo, tp, appLogger)

	// Authenticated-user cache backing the auth middleware
	userCache := cache.NewUserCache(cfg.Cache.UserTTL, tp, appLogger)
	defer userCache.Stop()

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:          handler.NewAuthHandler(auth, appLogger),
		Transaction:   handler.NewTransactionHandler(transactions, appLogger),
		Budget:        handler.NewBudgetHandler(budgets, appLogger),
		Pot:           handler.NewPotHandler(pots, appLogger),
		RecurringBill: handler.NewRecurringBillHandler(bills, appLogger),
		Overview:      handler.NewOverviewHandler(overview, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, handlers, auth, userCache, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
