package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storely/ecommerce_backend/config"
	"github.com/storely/ecommerce_backend/middleware"
	"github.com/storely/ecommerce_backend/models"
	"github.com/storely/ecommerce_backend/routes"
	"github.com/storely/ecommerce_backend/utils"
)

// newTestEnv spins up the full route surface against a throwaway database.
// Requires a reachable MongoDB; set MONGO_TEST_URI to run these tests.
func newTestEnv(t *testing.T) (*echo.Echo, *mongo.Database, *config.Config) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	dbName := "ecommerce_test_" + primitive.NewObjectID().Hex()
	config.EnsureCollections(client, dbName)
	db := client.Database(dbName)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "secret",
		SessionTTL:    time.Hour,
		DBName:        dbName,
	}

	e := echo.New()
	e.Validator = utils.NewValidator()
	routes.RegisterAuthRoutes(e, db, cfg)
	routes.RegisterCategoryRoutes(e, db)
	routes.RegisterProductRoutes(e, db)
	routes.RegisterDeliveryRoutes(e, db)

	return e, db, cfg
}

func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(middleware.AdminTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// adminToken seeds a valid session directly, bypassing the login endpoint.
func adminToken(t *testing.T, db *mongo.Database) string {
	t.Helper()

	now := time.Now().UTC()
	session := models.AdminSession{
		Token:     utils.GenerateSessionToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	_, err := db.Collection("adminsessions").InsertOne(context.Background(), session)
	require.NoError(t, err)
	return session.Token
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}
