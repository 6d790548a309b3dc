package rentControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anshurajlive/Assetivo/config"
	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/models"
	"github.com/anshurajlive/Assetivo/routers/propertyRoutes"
	"github.com/anshurajlive/Assetivo/routers/rentRoutes"
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
	rentRoutes.SetupRentPaymentRoutes(app)
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

func createTestTenantID(t *testing.T, app *fiber.App) uuid.UUID {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"authUid": "uid-" + t.Name(),
		"email":   "owner@example.com",
		"name":    "Owner",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user models.UserDetail
	decodeBody(t, resp, &user)

	resp = doJSON(t, app, http.MethodPost, "/api/properties", fiber.Map{
		"ownerId": user.ID,
		"name":    "Sunset Villa",
		"type":    "IndependentHouse",
		"address": "123 Main Street, Springfield",
		"status":  "Rented",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var property models.PropertyDetail
	decodeBody(t, resp, &property)

	resp = doJSON(t, app, http.MethodPost, "/api/tenants", fiber.Map{
		"propertyId":  property.ID,
		"name":        "John Doe",
		"phone":       "+1234567890",
		"monthlyRent": 1500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tenant models.TenantDTO
	decodeBody(t, resp, &tenant)
	return tenant.ID
}

func TestCreateRentPaymentDefaultsToPending(t *testing.T) {
	app := setupApp(t)
	tenantID := createTestTenantID(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/rentpayments", fiber.Map{
		"tenantId": tenantID,
		"amount":   1500,
		"dueDate":  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payment models.RentPaymentDTO
	decodeBody(t, resp, &payment)

	assert.Equal(t, tenantID, payment.TenantID)
	assert.Equal(t, models.PaymentPending, payment.PaymentStatus)
	assert.False(t, payment.Paid)
	assert.Nil(t, payment.PaidOn)
}

func TestCreateRentPaymentNegativeAmount(t *testing.T) {
	app := setupApp(t)
	tenantID := createTestTenantID(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/rentpayments", fiber.Map{
		"tenantId": tenantID,
		"amount":   -1,
		"dueDate":  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateRentPaymentUnknownTenant(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/rentpayments", fiber.Map{
		"tenantId": uuid.New(),
		"amount":   1500,
		"dueDate":  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRentPaymentMarksPaid(t *testing.T) {
	app := setupApp(t)
	tenantID := createTestTenantID(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/rentpayments", fiber.Map{
		"tenantId": tenantID,
		"amount":   1500,
		"dueDate":  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payment models.RentPaymentDTO
	decodeBody(t, resp, &payment)

	paidOn := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	resp = doJSON(t, app, http.MethodPut, "/api/rentpayments/"+payment.ID.String(), fiber.Map{
		"amount":        1500,
		"dueDate":       payment.DueDate,
		"paid":          true,
		"paidOn":        paidOn,
		"paymentStatus": "Success",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/rentpayments/"+payment.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.RentPaymentDTO
	decodeBody(t, resp, &updated)

	assert.True(t, updated.Paid)
	require.NotNil(t, updated.PaidOn)
	assert.True(t, updated.PaidOn.Equal(paidOn))
	assert.Equal(t, models.PaymentSuccess, updated.PaymentStatus)
	assert.Equal(t, tenantID, updated.TenantID)
}

func TestListRentPayments(t *testing.T) {
	app := setupApp(t)
	tenantID := createTestTenantID(t, app)

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/rentpayments", fiber.Map{
			"tenantId": tenantID,
			"amount":   1500,
			"dueDate":  time.Date(2026, time.Month(9+i), 1, 0, 0, 0, 0, time.UTC),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/rentpayments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payments []models.RentPaymentDTO
	decodeBody(t, resp, &payments)
	assert.Len(t, payments, 3)
}
