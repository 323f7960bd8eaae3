package controllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storely/ecommerce_backend/config"
	"github.com/storely/ecommerce_backend/models"
	"github.com/storely/ecommerce_backend/utils"
)

type AuthController struct {
	DB  *mongo.Database
	Cfg *config.Config
}

func NewAuthController(db *mongo.Database, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Login checks the configured admin credential pair and issues an opaque
// session token valid for the configured TTL. There is no refresh; after
// expiry a new login is required.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: utils.ValidationMessage(err),
		})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.Cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.Cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	now := time.Now().UTC()
	session := models.AdminSession{
		Token:     utils.GenerateSessionToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(ac.Cfg.SessionTTL),
	}

	if _, err := ac.DB.Collection("adminsessions").InsertOne(c.Request().Context(), session); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create admin session",
		})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}
