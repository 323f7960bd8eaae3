package controllers

import (
	"context"
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

type ProductController struct {
	DB *mongo.Database
}

func NewProductController(db *mongo.Database) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts returns the public product list, newest first. Products with
// in_stock explicitly false are excluded; an optional category_slug query
// parameter narrows the list to one category.
func (pc *ProductController) GetAllProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := bson.M{"in_stock": bson.M{"$ne": false}}
	if slug := c.QueryParam("category_slug"); slug != "" {
		filter["category_slug"] = slug
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := pc.DB.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode products",
		})
	}
	if products == nil {
		products = []models.Product{}
	}

	return c.JSON(http.StatusOK, products)
}

// GetProduct returns one product by ID.
func (pc *ProductController) GetProduct(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	var product models.Product
	err = pc.DB.Collection("products").FindOne(c.Request().Context(), bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve product",
		})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct inserts a new product after checking that the referenced
// category exists.
func (pc *ProductController) CreateProduct(c echo.Context) error {
	var req models.ProductRequest
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

	ctx := c.Request().Context()
	exists, err := pc.categoryExists(ctx, req.CategorySlug)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to verify category",
		})
	}
	if !exists {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category does not exist",
		})
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		CategorySlug: req.CategorySlug,
		ImageURL:     req.ImageURL,
		InStock:      inStock,
		CreatedAt:    time.Now().UTC(),
	}

	result, err := pc.DB.Collection("products").InsertOne(ctx, product)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create product",
		})
	}

	product.ID = result.InsertedID.(primitive.ObjectID)

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial merge to a product. A changed category
// reference is re-checked against the categories collection.
func (pc *ProductController) UpdateProduct(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	var req models.ProductUpdate
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

	set := req.SetFields()
	if len(set) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No fields to update",
		})
	}

	ctx := c.Request().Context()
	if req.CategorySlug != nil {
		exists, err := pc.categoryExists(ctx, *req.CategorySlug)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to verify category",
			})
		}
		if !exists {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Category does not exist",
			})
		}
	}

	result, err := pc.DB.Collection("products").UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set, "$currentDate": bson.M{"updated_at": true}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update product",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Product not found",
		})
	}

	var updated models.Product
	if err := pc.DB.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&updated); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Product updated but failed to retrieve updated data",
		})
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product.
func (pc *ProductController) DeleteProduct(c echo.Context) error {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	result, err := pc.DB.Collection("products").DeleteOne(c.Request().Context(), bson.M{"_id": objectID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete product",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Product not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// categoryExists reports whether a category with the given slug is stored.
func (pc *ProductController) categoryExists(ctx context.Context, slug string) (bool, error) {
	err := pc.DB.Collection("categories").FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
