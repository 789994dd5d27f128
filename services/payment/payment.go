package payment

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"edtech/config"
)

// MockReference is the ledger reference recorded for mock-provider charges.
const MockReference = "PAY-MOCK"

// Client charges coin purchases against the configured payment gateway.
// The "mock" provider succeeds unconditionally without a network call.
type Client struct {
	provider string
	baseURL  string
	http     *resty.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		provider: cfg.PaymentProvider,
		baseURL:  cfg.PaymentBaseURL,
		http:     resty.New().SetTimeout(10 * time.Second),
	}
}

// Provider returns the configured provider name.
func (cl *Client) Provider() string {
	return cl.provider
}

// Charge collects payment for a coin purchase and returns the gateway
// reference for the ledger entry.
func (cl *Client) Charge(userID string, coins int) (string, error) {
	if cl.provider == "mock" {
		return MockReference, nil
	}

	resp, err := cl.http.R().
		SetFormData(map[string]string{
			"user_id": userID,
			"amount":  fmt.Sprintf("%d", coins),
		}).
		Post(cl.baseURL + "/charges")
	if err != nil {
		log.Printf("Payment charge error: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment charge failed, response code: %d", resp.StatusCode())
		return "", fmt.Errorf("payment failed, code: %d", resp.StatusCode())
	}

	var chargeResp struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(resp.Body(), &chargeResp); err != nil {
		return "", fmt.Errorf("invalid charge response: %w", err)
	}
	return chargeResp.Reference, nil
}
