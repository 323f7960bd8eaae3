package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/storely/ecommerce_backend/models"
	"github.com/storely/ecommerce_backend/utils"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	e, _, _ := newTestEnv(t)

	rec := doRequest(e, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/admin/login", `{"username":"someone","password":"secret"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/admin/login", `{"username":"admin"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	e, _, cfg := newTestEnv(t)

	rec := doRequest(e, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login models.LoginResponse
	decodeJSON(t, rec, &login)
	require.NotEmpty(t, login.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(cfg.SessionTTL), login.ExpiresAt, time.Minute)

	// The token gates admin routes until expires_at.
	rec = doRequest(e, http.MethodPost, "/api/admin/categories", `{"name":"Shoes","slug":"shoes"}`, login.Token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAdminRoutesRejectMissingOrUnknownToken(t *testing.T) {
	e, _, _ := newTestEnv(t)

	rec := doRequest(e, http.MethodPost, "/api/admin/categories", `{"name":"Shoes","slug":"shoes"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp models.Response
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Missing admin token", resp.Message)

	rec = doRequest(e, http.MethodPost, "/api/admin/categories", `{"name":"Shoes","slug":"shoes"}`, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Invalid token", resp.Message)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	e, db, _ := newTestEnv(t)

	now := time.Now().UTC()
	session := models.AdminSession{
		Token:     utils.GenerateSessionToken(),
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	_, err := db.Collection("adminsessions").InsertOne(context.Background(), session)
	require.NoError(t, err)

	rec := doRequest(e, http.MethodPost, "/api/admin/categories", `{"name":"Shoes","slug":"shoes"}`, session.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Session expired", resp.Message)

	// Expired sessions are rejected on lookup, never purged.
	count, err := db.Collection("adminsessions").CountDocuments(context.Background(), bson.M{"token": session.Token})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
