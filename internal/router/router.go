// Package router wires services and handlers into the HTTP engine.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"carteira/internal/config"
	_ "carteira/internal/docs" // Import swagger docs
	"carteira/internal/handlers"
	"carteira/internal/middleware"
	"carteira/internal/services"
)

// PhotoURLPrefix is the path profile photos are served under.
const PhotoURLPrefix = "/uploads"

// New builds the engine with every route mounted.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Initialize services
	userService := services.NewUserService(db)
	entryService := services.NewEntryService(db)
	budgetService := services.NewBudgetService(db, cfg.BudgetYear)
	categoryService := services.NewCategoryService(db)
	investmentService := services.NewInvestmentService(db)
	profileService := services.NewProfileService(db)
	dashboardService := services.NewDashboardService(db, investmentService)
	chartService := services.NewChartService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	entryHandler := handlers.NewEntryHandler(entryService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.UploadDir, PhotoURLPrefix)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, chartService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(cors())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Static(PhotoURLPrefix, cfg.UploadDir)

	v1 := r.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/charts/expenses", dashboardHandler.GetExpenseChart)

	// Profile routes
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.UpdateProfile)
	protected.POST("/profile/photo", profileHandler.UploadPhoto)

	// Entry routes
	entries := protected.Group("/entries")
	entries.POST("", entryHandler.CreateEntry)
	entries.GET("", entryHandler.GetEntries)
	entries.GET("/grouped", entryHandler.GetGroupedEntries)
	entries.GET("/:id", entryHandler.GetEntry)
	entries.PUT("/:id", entryHandler.UpdateEntry)
	entries.DELETE("/:id", entryHandler.DeleteEntry)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/grouped", budgetHandler.GetGroupedBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/names", categoryHandler.GetCategoryNames)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Investment routes
	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
