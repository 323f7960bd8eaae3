package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storely/ecommerce_backend/models"
	"github.com/storely/ecommerce_backend/utils"
)

const defaultDeliveryName = "Standard Delivery"

type DeliveryController struct {
	DB *mongo.Database
}

func NewDeliveryController(db *mongo.Database) *DeliveryController {
	return &DeliveryController{DB: db}
}

// GetDeliveryCharge returns the most recently created delivery-charge table,
// or JSON null when none has been set yet.
func (dc *DeliveryController) GetDeliveryCharge(c echo.Context) error {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var charge models.DeliveryCharge
	err := dc.DB.Collection("deliverycharges").FindOne(c.Request().Context(), bson.M{}, opts).Decode(&charge)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve delivery charges",
		})
	}

	return c.JSON(http.StatusOK, charge)
}

// SetDeliveryCharge always inserts a new delivery-charge table; the newest
// insertion becomes current for subsequent reads. Existing tables are never
// mutated or deleted.
func (dc *DeliveryController) SetDeliveryCharge(c echo.Context) error {
	var req models.DeliveryChargeRequest
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

	name := req.Name
	if name == "" {
		name = defaultDeliveryName
	}
	rates := req.Rates
	if rates == nil {
		rates = []models.DeliveryRate{}
	}

	charge := models.DeliveryCharge{
		Name:      name,
		Notes:     req.Notes,
		Rates:     rates,
		CreatedAt: time.Now().UTC(),
	}

	result, err := dc.DB.Collection("deliverycharges").InsertOne(c.Request().Context(), charge)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save delivery charges",
		})
	}

	charge.ID = result.InsertedID.(primitive.ObjectID)

	return c.JSON(http.StatusCreated, charge)
}
