package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/controllers"
	"github.com/storely/ecommerce_backend/middleware"
)

// RegisterCategoryRoutes sets up all category-related routes.
func RegisterCategoryRoutes(e *echo.Echo, db *mongo.Database) {
	categoryController := controllers.NewCategoryController(db)

	// Public routes (no auth required)
	e.GET("/api/categories", categoryController.GetAllCategories)

	// Admin protected routes
	adminCategories := e.Group("/api/admin/categories")
	adminCategories.Use(middleware.AdminAuth(db))

	adminCategories.POST("", categoryController.CreateCategory)
	adminCategories.PUT("/:id", categoryController.UpdateCategory)
	adminCategories.DELETE("/:id", categoryController.DeleteCategory)
}
