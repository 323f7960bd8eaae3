package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/config"
	"github.com/storely/ecommerce_backend/controllers"
)

// RegisterAuthRoutes sets up the admin login route.
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Database, cfg *config.Config) {
	authController := controllers.NewAuthController(db, cfg)

	e.POST("/api/admin/login", authController.Login)
}
