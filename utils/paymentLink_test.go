package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anshurajlive/Assetivo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentLinkUnconfigured(t *testing.T) {
	config.AppConfig = &config.Config{}

	link, err := CreatePaymentLink(1500, time.Now(), "John Doe", "+1234567890")
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestCreatePaymentLink(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "created",
			"short_url": "https://pay.example.com/l/abc123",
		})
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		PayLinkApiURL: server.URL,
		PayLinkApiKey: "test-key",
	}

	link, err := CreatePaymentLink(1500, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "John Doe", "+1234567890")
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/l/abc123", link)
	assert.Equal(t, "/payment-links", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "John Doe", gotBody["customer"].(map[string]interface{})["name"])
}

func TestCreatePaymentLinkGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"error","message":"bad key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		PayLinkApiURL: server.URL,
		PayLinkApiKey: "wrong-key",
	}

	_, err := CreatePaymentLink(1500, time.Now(), "John Doe", "+1234567890")
	assert.Error(t, err)
}
