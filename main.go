package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/config"
	"github.com/storely/ecommerce_backend/routes"
	"github.com/storely/ecommerce_backend/utils"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	// Connect to database
	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("MongoDB configuration error: ", err)
	}
	db := client.Database(cfg.DatabaseName())

	// Create a new Echo instance
	e := echo.New()
	e.Validator = utils.NewValidator()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"message": "eCommerce Backend Running",
		})
	})

	e.GET("/test", diagnosticHandler(client, cfg))

	// Register routes
	routes.RegisterAuthRoutes(e, db, cfg)
	routes.RegisterCategoryRoutes(e, db)
	routes.RegisterProductRoutes(e, db)
	routes.RegisterDeliveryRoutes(e, db)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// diagnosticHandler reports store connectivity and configuration presence. A
// store that is down never fails this route; it is reported as unavailable.
func diagnosticHandler(client *mongo.Client, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := map[string]interface{}{
			"backend":           "Running",
			"database":          "Not Available",
			"database_url":      presenceFlag(cfg.MongoURI != ""),
			"database_name":     presenceFlag(cfg.DBName != ""),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx, nil); err == nil {
			response["database"] = "Connected"
			response["connection_status"] = "Connected"

			names, err := client.Database(cfg.DatabaseName()).ListCollectionNames(ctx, bson.M{})
			if err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}

		return c.JSON(200, response)
	}
}

func presenceFlag(ok bool) string {
	if ok {
		return "Set"
	}
	return "Not Set"
}
