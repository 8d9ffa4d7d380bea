package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"fintrack/internal/advice"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/store"
	"fintrack/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fintrack/internal/docs" // Import swagger docs
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance application for tracking accounts, income and expenses, with AI-generated financial advice.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	validator.Register()

	// Pick the backing store. Demo mode runs fully in memory with seeded
	// sample data and needs no database at all.
	var st store.Store
	if appConfig.DemoMode {
		log.Infow("running in demo mode with in-memory store",
			"demo_email", store.DemoEmail)
		st = store.NewDemoStore()
	} else {
		dbManager, err := database.NewManager(appConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		st = store.NewGormStore(dbManager.DB())
	}

	// Initialize services
	userService := services.NewUserService(st)
	accountService := services.NewAccountService(st)
	ledgerService := services.NewLedgerService(st)

	var generator advice.Generator
	if appConfig.GeminiAPIKey != "" {
		gemini, err := advice.NewGeminiGenerator(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			log.Warnw("advice generation disabled", "error", err.Error())
		} else {
			generator = gemini
		}
	} else {
		log.Info("no Gemini API key configured; advice endpoint will return a fallback message")
	}
	adviceService := advice.NewService(generator, appConfig.AdviceLanguage, appConfig.AdviceTimeout)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(accountService, ledgerService)
	categoryHandler := handlers.NewCategoryHandler()
	adviceHandler := handlers.NewAdviceHandler(accountService, ledgerService, adviceService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "demo_mode": appConfig.DemoMode})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetUserAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)

	// Aggregate views
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/categories", categoryHandler.GetCategories)
	protected.POST("/advice", adviceHandler.GetAdvice)

	log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
