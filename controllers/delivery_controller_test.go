package controllers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/storely/ecommerce_backend/models"
)

func TestGetDeliveryChargeReturnsNullWhenUnset(t *testing.T) {
	e, _, _ := newTestEnv(t)

	rec := doRequest(e, http.MethodGet, "/api/delivery", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestSetDeliveryChargeAppliesDefaults(t *testing.T) {
	e, db, _ := newTestEnv(t)
	token := adminToken(t, db)

	rec := doRequest(e, http.MethodPost, "/api/admin/delivery", `{}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var charge models.DeliveryCharge
	decodeJSON(t, rec, &charge)
	assert.False(t, charge.ID.IsZero())
	assert.Equal(t, "Standard Delivery", charge.Name)
	assert.NotNil(t, charge.Rates)
	assert.Empty(t, charge.Rates)
}

func TestLatestDeliveryChargeWins(t *testing.T) {
	e, db, _ := newTestEnv(t)
	token := adminToken(t, db)

	rec := doRequest(e, http.MethodPost, "/api/admin/delivery",
		`{"name":"First","rates":[{"location":"Inside City","charge":60}]}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	// created_at is millisecond precision in the store; make sure the second
	// table lands strictly later.
	time.Sleep(10 * time.Millisecond)

	rec = doRequest(e, http.MethodPost, "/api/admin/delivery",
		`{"name":"Second","notes":"Updated rates","rates":[{"location":"Inside City","charge":80},{"location":"Outside City","charge":120}]}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/delivery", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var current models.DeliveryCharge
	decodeJSON(t, rec, &current)
	assert.Equal(t, "Second", current.Name)
	assert.Equal(t, "Updated rates", current.Notes)
	require.Len(t, current.Rates, 2)
	assert.Equal(t, 120.0, current.Rates[1].Charge)

	// Setting never mutates: every table stays stored.
	count, err := db.Collection("deliverycharges").CountDocuments(context.Background(), bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSetDeliveryChargeRequiresAdmin(t *testing.T) {
	e, _, _ := newTestEnv(t)

	rec := doRequest(e, http.MethodPost, "/api/admin/delivery", `{"name":"First"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetDeliveryChargeValidatesRates(t *testing.T) {
	e, db, _ := newTestEnv(t)
	token := adminToken(t, db)

	rec := doRequest(e, http.MethodPost, "/api/admin/delivery",
		`{"rates":[{"location":"","charge":50}]}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/admin/delivery",
		`{"rates":[{"location":"Inside City","charge":-5}]}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
