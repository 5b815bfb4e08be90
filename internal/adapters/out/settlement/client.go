// Package settlement implements the SettlementClient port against the
// settlement service's HTTP API.
package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// defaultTimeout bounds a settlement check so a stalled service cannot hold
// up the whole batch.
const defaultTimeout = 5 * time.Second

// Client implements the SettlementClient port over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.SettlementClient = &Client{}

// NewClient creates a settlement client for the service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type settlementResponse struct {
	Outcome string `json:"outcome"`
	Score   int    `json:"score"`
}

// Call checks the settlement state of the given order. Transport faults and
// non-2xx answers are returned as errors for the caller to absorb.
func (c *Client) Call(ctx context.Context, orderID kernel.UUID) (ports.SettlementResult, error) {
	url := fmt.Sprintf("%s/settlements/%s", c.baseURL, orderID)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.SettlementResult{}, fmt.Errorf("build settlement request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return ports.SettlementResult{}, fmt.Errorf("call settlement service: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return ports.SettlementResult{}, fmt.Errorf("settlement service returned status %d", response.StatusCode)
	}

	var body settlementResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return ports.SettlementResult{}, fmt.Errorf("decode settlement response: %w", err)
	}

	return ports.SettlementResult{Outcome: body.Outcome, Score: body.Score}, nil
}
