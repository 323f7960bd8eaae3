package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/controllers"
	"github.com/storely/ecommerce_backend/middleware"
)

// RegisterDeliveryRoutes sets up the delivery-charge routes.
func RegisterDeliveryRoutes(e *echo.Echo, db *mongo.Database) {
	deliveryController := controllers.NewDeliveryController(db)

	// Public route: current delivery-charge table
	e.GET("/api/delivery", deliveryController.GetDeliveryCharge)

	// Admin protected route: setting charges always inserts a new table
	adminDelivery := e.Group("/api/admin/delivery")
	adminDelivery.Use(middleware.AdminAuth(db))
	adminDelivery.POST("", deliveryController.SetDeliveryCharge)
}
