package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the stored document for a catalog category. Slug is the
// public-facing key and is unique across the collection.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CategoryRequest is the create payload. IsActive defaults to true when
// omitted.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CategoryUpdate is the partial-update payload. Only non-nil fields
// participate in the merge; absence is distinguished from a zero value by the
// pointer, not by a sentinel.
type CategoryUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Slug        *string `json:"slug" validate:"omitempty,slug"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// SetFields returns the $set document for the fields present in the payload.
func (u *CategoryUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Slug != nil {
		set["slug"] = *u.Slug
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.IsActive != nil {
		set["is_active"] = *u.IsActive
	}
	return set
}
