package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/controllers"
	"github.com/Inaglyite/secondhand-books-api/logger"
	"github.com/Inaglyite/secondhand-books-api/models"
	"github.com/Inaglyite/secondhand-books-api/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Initialize(cfg.GoEnv)
	defer logger.Sync()
	logger.Log.Info("Starting secondhand books API server")

	if err := config.ConnectDatabase(cfg); err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Log.Info("Database migration completed successfully")

	// Patch schemas created before the hashed_password column was added;
	// failures are logged inside and the server starts anyway
	config.EnsureLegacyColumns(db, cfg.DBName)

	if err := seed.Run(db); err != nil {
		logger.Log.Warn("Seed routine failed", zap.Error(err))
	}

	router := setupRouter()

	addr := ":" + cfg.Port
	logger.Log.Info("Server is running", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}

// setupRouter wires middleware and all routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The original frontend is served from another origin; keep CORS wide open
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	router.Use(cors.New(corsConfig))

	router.SetHTMLTemplate(controllers.AdminTemplates())

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)
		api.GET("/debug/info", debugInfo)

		api.POST("/users", controllers.CreateUser)
		api.GET("/users", controllers.ListUsers)
		api.PATCH("/users/:id", controllers.UpdateUser)
		api.DELETE("/users/:id", controllers.DeleteUser)

		api.GET("/books", controllers.ListBooks)
		api.POST("/books", controllers.CreateBook)
		api.GET("/books/:id", controllers.GetBook)
		api.PATCH("/books/:id", controllers.UpdateBook)
		api.DELETE("/books/:id", controllers.DeleteBook)
		api.PATCH("/books/:id/status", controllers.SetBookStatus)

		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders", controllers.ListOrders)
		api.GET("/orders/:id", controllers.GetOrder)
		api.PATCH("/orders/:id", controllers.UpdateOrder)
		api.DELETE("/orders/:id", controllers.DeleteOrder)
	}

	admin := router.Group("/admin")
	{
		admin.GET("", controllers.AdminDashboard)
		admin.GET("/users", controllers.AdminUsers)
		admin.POST("/users", controllers.AdminCreateUser)
		admin.POST("/users/:id/toggle", controllers.AdminToggleUser)
		admin.POST("/users/:id/delete", controllers.AdminDeleteUser)
		admin.GET("/books", controllers.AdminBooks)
		admin.POST("/books/:id/status", controllers.AdminSetBookStatus)
		admin.POST("/books/:id/delete", controllers.AdminDeleteBook)
		admin.GET("/orders", controllers.AdminOrders)
		admin.POST("/orders/:id/status", controllers.AdminSetOrderStatus)
		admin.POST("/orders/:id/delete", controllers.AdminDeleteOrder)
	}

	return router
}

// healthCheck handles GET /api/health
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// debugInfo handles GET /api/debug/info - entity counts for quick inspection
func debugInfo(c *gin.Context) {
	db := config.GetDB()

	var users, books int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Book{}).Count(&books)

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"books": books,
	})
}
