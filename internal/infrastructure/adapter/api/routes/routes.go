package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/handler"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/middleware"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/cache"
)

// Handlers groups every HTTP handler the API mounts
type Handlers struct {
	Auth          *handler.AuthHandler
	Transaction   *handler.TransactionHandler
	Budget        *handler.BudgetHandler
	Pot           *handler.PotHandler
	RecurringBill *handler.RecurringBillHandler
	Overview      *handler.OverviewHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authUseCase usecase.AuthUseCase,
	userCache *cache.UserCache,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)
	}

	// Everything below requires a valid bearer token
	protected := api.Group("")
	protected.Use(middleware.Auth(authUseCase, userCache, logger))
	{
		protected.GET("/auth/me", handlers.Auth.GetProfile)

		transactions := protected.Group("/transactions")
		{
			transactions.POST("", handlers.Transaction.CreateTransaction)
			transactions.GET("", handlers.Transaction.GetTransactions)
			transactions.GET("/:id", handlers.Transaction.GetTransaction)
			transactions.PUT("/:id", handlers.Transaction.UpdateTransaction)
			transactions.DELETE("/:id", handlers.Transaction.DeleteTransaction)
		}

		budgets := protected.Group("/budgets")
		{
			budgets.POST("", handlers.Budget.CreateBudget)
			budgets.GET("", handlers.Budget.GetBudgets)
			budgets.GET("/:id", handlers.Budget.GetBudget)
			budgets.GET("/:id/spending", handlers.Budget.GetBudgetSpending)
			budgets.PUT("/:id", handlers.Budget.UpdateBudget)
			budgets.DELETE("/:id", handlers.Budget.DeleteBudget)
		}

		pots := protected.Group("/pots")
		{
			pots.POST("", handlers.Pot.CreatePot)
			pots.GET("", handlers.Pot.GetPots)
			pots.GET("/:id", handlers.Pot.GetPot)
			pots.GET("/:id/progress", handlers.Pot.GetPotProgress)
			pots.PUT("/:id", handlers.Pot.UpdatePot)
			pots.DELETE("/:id", handlers.Pot.DeletePot)
			pots.POST("/:id/add", handlers.Pot.AddMoney)
			pots.POST("/:id/withdraw", handlers.Pot.WithdrawMoney)
		}

		bills := protected.Group("/recurring-bills")
		{
			bills.POST("", handlers.RecurringBill.CreateRecurringBill)
			bills.GET("", handlers.RecurringBill.GetRecurringBills)
			bills.GET("/due-soon", handlers.RecurringBill.GetBillsDueSoon)
			bills.GET("/:id", handlers.RecurringBill.GetRecurringBill)
			bills.PUT("/:id", handlers.RecurringBill.UpdateRecurringBill)
			bills.DELETE("/:id", handlers.RecurringBill.DeleteRecurringBill)
			bills.POST("/payments/:paymentId/pay", handlers.RecurringBill.MarkPaymentPaid)
		}

		overview := protected.Group("/overview")
		{
			overview.GET("", handlers.Overview.GetOverview)
			overview.GET("/trends", handlers.Overview.GetMonthlyTrends)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
