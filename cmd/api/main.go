package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Smitap11/taxables-backend/internal/config"
	"github.com/Smitap11/taxables-backend/internal/database"
	"github.com/Smitap11/taxables-backend/internal/handlers"
	"github.com/Smitap11/taxables-backend/internal/logger"
	"github.com/Smitap11/taxables-backend/internal/middleware"
	"github.com/Smitap11/taxables-backend/internal/services"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	transactionService := services.NewTransactionService(db)
	insightService := services.NewInsightService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	insightsHandler := handlers.NewInsightsHandler(insightService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/me", authHandler.Me)

	income := protected.Group("/income")
	income.GET("", incomeHandler.List)
	income.POST("", incomeHandler.Create)
	income.GET("/:id", incomeHandler.Get)
	income.PUT("/:id", incomeHandler.Update)
	income.PATCH("/:id", incomeHandler.Update)
	income.DELETE("/:id", incomeHandler.Delete)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.PATCH("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.GET("/:id", budgetHandler.Get)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.PATCH("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	filters := protected.Group("/filters")
	filters.GET("/types", transactionHandler.FilterTypes)
	filters.GET("/categories", transactionHandler.FilterCategories)

	protected.GET("/transactions", transactionHandler.Feed)
	protected.GET("/insights", insightsHandler.Insights)
	protected.GET("/dashboard", insightsHandler.Dashboard)

	log.Infof("Starting taxables backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
