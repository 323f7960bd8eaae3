package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the stored document for a catalog product. CategorySlug
// references a Category by slug; the reference is checked at create/update
// time only, never on category delete.
type Product struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64            `json:"price" bson:"price"`
	CategorySlug string             `json:"category_slug" bson:"category_slug"`
	ImageURL     string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	InStock      bool               `json:"in_stock" bson:"in_stock"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ProductRequest is the create payload. Price is a pointer so that an
// explicit 0 passes required while a missing price fails it. InStock defaults
// to true when omitted.
type ProductRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	CategorySlug string   `json:"category_slug" validate:"required"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
	InStock      *bool    `json:"in_stock"`
}

// ProductUpdate is the partial-update payload.
type ProductUpdate struct {
	Title        *string  `json:"title" validate:"omitempty,min=1"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	CategorySlug *string  `json:"category_slug" validate:"omitempty,min=1"`
	ImageURL     *string  `json:"image_url" validate:"omitempty,url"`
	InStock      *bool    `json:"in_stock"`
}

// SetFields returns the $set document for the fields present in the payload.
func (u *ProductUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.CategorySlug != nil {
		set["category_slug"] = *u.CategorySlug
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	if u.InStock != nil {
		set["in_stock"] = *u.InStock
	}
	return set
}
