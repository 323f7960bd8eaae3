package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryRate is one location/charge row of a delivery-charge table.
type DeliveryRate struct {
	Location string  `json:"location" bson:"location" validate:"required"`
	Charge   float64 `json:"charge" bson:"charge" validate:"gte=0"`
}

// DeliveryCharge is a stored delivery-charge table. The collection is
// append-only: setting charges inserts a new document and the newest
// created_at wins for reads.
type DeliveryCharge struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Rates     []DeliveryRate     `json:"rates" bson:"rates"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// DeliveryChargeRequest is the payload for setting delivery charges. Name
// defaults to "Standard Delivery" when omitted.
type DeliveryChargeRequest struct {
	Name  string         `json:"name"`
	Notes string         `json:"notes"`
	Rates []DeliveryRate `json:"rates" validate:"omitempty,dive"`
}
