package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/anshurajlive/Assetivo/config"

	"github.com/go-resty/resty/v2"
)

type paymentLinkResponse struct {
	Status   string `json:"status"`
	ShortURL string `json:"short_url"`
	Message  string `json:"message"`
}

// CreatePaymentLink asks the configured payment gateway for a collect link
// covering one rent installment. Returns "" without error when no gateway
// is configured.
func CreatePaymentLink(amount float64, dueDate time.Time, tenantName, tenantPhone string) (string, error) {
	cfg := config.AppConfig
	if cfg == nil || cfg.PayLinkApiURL == "" {
		return "", nil
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+cfg.PayLinkApiKey).
		SetBody(map[string]interface{}{
			"amount":      amount,
			"expire_by":   dueDate.Unix(),
			"description": "Monthly rent",
			"customer": map[string]string{
				"name":  tenantName,
				"phone": tenantPhone,
			},
		}).
		Post(cfg.PayLinkApiURL + "/payment-links")
	if err != nil {
		return "", fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return "", fmt.Errorf("payment gateway error: %s", resp.String())
	}

	var linkResp paymentLinkResponse
	if err := json.Unmarshal(resp.Body(), &linkResp); err != nil {
		return "", fmt.Errorf("invalid gateway response: %w", err)
	}
	if linkResp.ShortURL == "" {
		return "", fmt.Errorf("gateway returned no link: %s", linkResp.Message)
	}

	return linkResp.ShortURL, nil
}
