// Package payment implements the PaymentProcessor port against the payment
// gateway's HTTP API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// defaultTimeout bounds a charge attempt.
const defaultTimeout = 5 * time.Second

// Client implements the PaymentProcessor port over HTTP. Transport faults are
// folded into failed payment results: a charge the gateway never confirmed is
// treated as declined.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.PaymentProcessor = &Client{}

// NewClient creates a payment client for the gateway at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type chargeRequest struct {
	Amount float64 `json:"amount"`
}

type chargeResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Charge attempts to capture the given amount.
func (c *Client) Charge(ctx context.Context, amount float64) ports.PaymentResult {
	payload, err := json.Marshal(chargeRequest{Amount: amount})
	if err != nil {
		return failed(fmt.Errorf("encode charge request: %w", err))
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", bytes.NewReader(payload))
	if err != nil {
		return failed(fmt.Errorf("build charge request: %w", err))
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return failed(fmt.Errorf("call payment gateway: %w", err))
	}
	defer response.Body.Close()

	var body chargeResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return failed(fmt.Errorf("decode charge response: %w", err))
	}

	if body.Status != ports.PaymentStatusSuccess {
		return ports.PaymentResult{Status: ports.PaymentStatusFailed, Error: body.Error}
	}
	return ports.PaymentResult{Status: ports.PaymentStatusSuccess}
}

func failed(err error) ports.PaymentResult {
	return ports.PaymentResult{Status: ports.PaymentStatusFailed, Error: err.Error()}
}
