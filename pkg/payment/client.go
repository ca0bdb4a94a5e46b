// Package payment is the HTTP client for the hosted payment-session service.
// The service takes the cart's line items plus redirect URLs and returns a
// hosted checkout page to send the customer to.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"madhurfashion.in/storefront/pkg/global"
)

type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

type SessionRequest struct {
	LineItems       []LineItem        `json:"lineItems"`
	SuccessRedirect string            `json:"successRedirect"`
	CancelRedirect  string            `json:"cancelRedirect"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type sessionResponse struct {
	RedirectURL string `json:"redirectUrl"`
	Message     string `json:"message,omitempty"`
}

type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

func NewClient() (*Client, error) {
	apiURL := global.GetEnvOrDefault("PAYMENT_API_URL", "")
	apiKey := global.GetEnvOrDefault("PAYMENT_API_KEY", "")
	if apiURL == "" || apiKey == "" {
		return nil, fmt.Errorf("payment configuration missing")
	}
	return &Client{apiURL: apiURL, apiKey: apiKey, http: &http.Client{}}, nil
}

// NewClientWithURL is for tests and alternate deployments.
func NewClientWithURL(apiURL, apiKey string) *Client {
	return &Client{apiURL: apiURL, apiKey: apiKey, http: &http.Client{}}
}

// CreateSession asks the provider for a checkout session and returns the
// redirect URL.
func (c *Client) CreateSession(ctx context.Context, session SessionRequest) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment service: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var parsed sessionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse payment response (%d): %s", resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Message != "" {
			return "", fmt.Errorf("%s", parsed.Message)
		}
		return "", fmt.Errorf("payment service error (%d): %s", resp.StatusCode, string(body))
	}

	if parsed.RedirectURL == "" {
		return "", fmt.Errorf("payment service returned empty redirect URL")
	}
	return parsed.RedirectURL, nil
}
