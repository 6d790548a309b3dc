package reminderControllers_test

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
	"github.com/anshurajlive/Assetivo/routers/reminderRoutes"
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
	reminderRoutes.SetupReminderRoutes(app)
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

func TestCreateReminder(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/reminders", fiber.Map{
		"ownerId":      ownerID,
		"message":      "Renew insurance for Sunset Villa",
		"reminderDate": time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reminder models.ReminderDTO
	decodeBody(t, resp, &reminder)

	assert.Equal(t, ownerID, reminder.OwnerID)
	assert.False(t, reminder.Completed)
}

func TestCreateReminderUnknownOwner(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reminders", fiber.Map{
		"ownerId":      uuid.New(),
		"message":      "Renew insurance",
		"reminderDate": time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateReminderMissingMessage(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/reminders", fiber.Map{
		"ownerId":      ownerID,
		"reminderDate": time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateReminderMarksCompleted(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/reminders", fiber.Map{
		"ownerId":      ownerID,
		"message":      "Renew insurance",
		"reminderDate": time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reminder models.ReminderDTO
	decodeBody(t, resp, &reminder)

	resp = doJSON(t, app, http.MethodPut, "/api/reminders/"+reminder.ID.String(), fiber.Map{
		"message":      "Renew insurance",
		"reminderDate": reminder.ReminderDate,
		"completed":    true,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/reminders/"+reminder.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.ReminderDTO
	decodeBody(t, resp, &updated)

	assert.True(t, updated.Completed)
	assert.Equal(t, ownerID, updated.OwnerID)
}

func TestDeleteReminder(t *testing.T) {
	app := setupApp(t)
	ownerID := createTestOwner(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/reminders", fiber.Map{
		"ownerId":      ownerID,
		"message":      "Renew insurance",
		"reminderDate": time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reminder models.ReminderDTO
	decodeBody(t, resp, &reminder)

	resp = doJSON(t, app, http.MethodDelete, "/api/reminders/"+reminder.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/reminders/"+reminder.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/reminders/"+reminder.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
