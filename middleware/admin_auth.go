// middleware/admin_auth.go
package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/models"
)

// AdminTokenHeader carries the opaque admin bearer token.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth gates admin-only routes. Every request costs one session lookup;
// validity is never cached and a valid session is not renewed or extended.
func AdminAuth(db *mongo.Database) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(AdminTokenHeader)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Missing admin token",
				})
			}

			var session models.AdminSession
			err := db.Collection("adminsessions").FindOne(c.Request().Context(), bson.M{"token": token}).Decode(&session)
			if err != nil {
				if err == mongo.ErrNoDocuments {
					return c.JSON(http.StatusUnauthorized, models.Response{
						Status:  http.StatusUnauthorized,
						Message: "Invalid token",
					})
				}
				return c.JSON(http.StatusInternalServerError, models.Response{
					Status:  http.StatusInternalServerError,
					Message: "Failed to verify admin session",
				})
			}

			if time.Now().After(session.ExpiresAt) {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Session expired",
				})
			}

			return next(c)
		}
	}
}
