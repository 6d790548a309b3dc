package propertyControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anshurajlive/Assetivo/config"
	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/models"
	"github.com/anshurajlive/Assetivo/routers/documentRoutes"
	"github.com/anshurajlive/Assetivo/routers/propertyRoutes"
	"github.com/anshurajlive/Assetivo/routers/tenantRoutes"
	"github.com/anshurajlive/Assetivo/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	propertyRoutes.SetupPropertyRoutes(app)
	tenantRoutes.SetupTenantRoutes(app)
	documentRoutes.SetupDocumentRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createTestOwner(t *testing.T, app *fiber.App) uuid.UUID {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"authUid": "uid-" + t.Name(),
		"email":   "owner@example.com",
		"name":    "Owner",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.UserDetail
	decodeBody(t, resp, &user)
	return user.ID
}

func createTestProperty(t *testing.T, app *fiber.App, ownerID uuid.UUID) models.PropertyDetail {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/properties", fiber.Map{
		"ownerId": ownerID,
		"name":    "Sunset Villa",
		"type":    "IndependentHouse",
		"address": "123 Main Street, Springfield",
		"size":    2500,
		"status":  "Rented",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var detail models.PropertyDetail
	decodeBody(t, resp, &detail)
	return detail
}

func TestCreatePropertyReturnsLocationAndDetail(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/properties", fiber.Map{
		"ownerId":            ownerID,
		"name":               "Sunset Villa",
		"type":               "IndependentHouse",
		"address":            "123 Main Street, Springfield",
		"size":               2500,
		"currentMarketValue": 450000,
		"status":             "Rented",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var detail models.PropertyDetail
	location := resp.Header.Get("Location")
	decodeBody(t, resp, &detail)

	assert.NotEqual(t, uuid.Nil, detail.ID)
	assert.Equal(t, ownerID, detail.OwnerID)
	assert.Equal(t, "/api/properties/"+detail.ID.String(), location)
	assert.Empty(t, detail.Tenants)
	assert.Empty(t, detail.Documents)
}

func TestGetPropertyDetailResolvesChildren(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)
	property := createTestProperty(t, app, ownerID)

	resp := doJSON(t, app, http.MethodPost, "/api/tenants", fiber.Map{
		"propertyId":  property.ID,
		"name":        "John Doe",
		"phone":       "+1234567890",
		"monthlyRent": 1500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tenant models.TenantDTO
	decodeBody(t, resp, &tenant)

	resp = doJSON(t, app, http.MethodPost, "/api/documents", fiber.Map{
		"propertyId": property.ID,
		"fileName":   "deed.pdf",
		"fileUrl":    "https://files.example.com/deed.pdf",
		"fileType":   "pdf",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var document models.DocumentDTO
	decodeBody(t, resp, &document)

	resp = doJSON(t, app, http.MethodGet, "/api/properties/"+property.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail models.PropertyDetail
	decodeBody(t, resp, &detail)

	require.Len(t, detail.Tenants, 1)
	assert.Equal(t, tenant.ID, detail.Tenants[0].ID)
	require.Len(t, detail.Documents, 1)
	assert.Equal(t, document.ID, detail.Documents[0].ID)
}

func TestListPropertiesReturnsSummaries(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)
	createTestProperty(t, app, ownerID)

	resp := doJSON(t, app, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summaries []map[string]interface{}
	decodeBody(t, resp, &summaries)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Sunset Villa", summaries[0]["name"])
	// Summary projection leaves out the heavy fields
	assert.NotContains(t, summaries[0], "ownerId")
	assert.NotContains(t, summaries[0], "size")
}

func TestCreatePropertyValidation(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/properties", fiber.Map{
		"ownerId": ownerID,
		"type":    "Castle",
		"status":  "Rented",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreatePropertyUnknownOwner(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/properties", fiber.Map{
		"ownerId": uuid.New(),
		"name":    "Orphan House",
		"type":    "Apartment",
		"address": "1 Void Street",
		"status":  "AvailableForRent",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePropertyKeepsIDAndOwner(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)
	property := createTestProperty(t, app, ownerID)

	resp := doJSON(t, app, http.MethodPut, "/api/properties/"+property.ID.String(), fiber.Map{
		"id":      uuid.New(),
		"ownerId": uuid.New(),
		"name":    "Sunrise Villa",
		"type":    "IndependentHouse",
		"address": "123 Main Street, Springfield",
		"size":    2600,
		"status":  "SelfOccupied",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/properties/"+property.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail models.PropertyDetail
	decodeBody(t, resp, &detail)

	assert.Equal(t, property.ID, detail.ID)
	assert.Equal(t, ownerID, detail.OwnerID)
	assert.Equal(t, "Sunrise Villa", detail.Name)
	assert.Equal(t, models.SelfOccupied, detail.Status)
}

func TestUpdateMissingPropertyReturnsNotFound(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/properties/"+uuid.NewString(), fiber.Map{
		"name":    "Ghost House",
		"type":    "Apartment",
		"address": "1 Void Street",
		"status":  "Rented",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdatePropertyDeletedMidRequest(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)
	property := createTestProperty(t, app, ownerID)

	// Drop the row after the handler has read it but before it writes
	db := database.Database.Db
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("drop_row_first", func(tx *gorm.DB) {
		tx.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM properties WHERE id = ?", property.ID)
	}))
	defer db.Callback().Update().Remove("drop_row_first")

	resp := doJSON(t, app, http.MethodPut, "/api/properties/"+property.ID.String(), fiber.Map{
		"name":    "Sunrise Villa",
		"type":    "IndependentHouse",
		"address": "123 Main Street, Springfield",
		"status":  "Rented",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The write must not bring the deleted row back
	resp = doJSON(t, app, http.MethodGet, "/api/properties/"+property.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePropertyCascades(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)
	property := createTestProperty(t, app, ownerID)

	resp := doJSON(t, app, http.MethodPost, "/api/tenants", fiber.Map{
		"propertyId":  property.ID,
		"name":        "John Doe",
		"phone":       "+1234567890",
		"monthlyRent": 1500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tenant models.TenantDTO
	decodeBody(t, resp, &tenant)

	resp = doJSON(t, app, http.MethodDelete, "/api/properties/"+property.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/properties/"+property.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/tenants/"+tenant.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting again keeps reporting not found
	resp = doJSON(t, app, http.MethodDelete, "/api/properties/"+property.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
