package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/controllers"
	"github.com/storely/ecommerce_backend/middleware"
)

// RegisterProductRoutes sets up all product-related routes.
func RegisterProductRoutes(e *echo.Echo, db *mongo.Database) {
	productController := controllers.NewProductController(db)

	// Public routes (no auth required)
	products := e.Group("/api/products")
	products.GET("", productController.GetAllProducts)
	products.GET("/:id", productController.GetProduct)

	// Admin protected routes
	adminProducts := e.Group("/api/admin/products")
	adminProducts.Use(middleware.AdminAuth(db))

	adminProducts.POST("", productController.CreateProduct)
	adminProducts.PUT("/:id", productController.UpdateProduct)
	adminProducts.DELETE("/:id", productController.DeleteProduct)
}
