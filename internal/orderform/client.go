package orderform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bloomshine/storefront/internal/models"
)

// Client submits orders to the intake endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for the intake service at baseURL.
func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// orderReply covers both the success and the error shapes of the intake
// endpoint: {success, orderId} or {error}.
type orderReply struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"orderId"`
	Error   string `json:"error"`
}

// PlaceOrder issues a single POST to the intake endpoint. There is no retry:
// a transport failure or an error reply is returned to the caller as-is.
func (c *Client) PlaceOrder(ctx context.Context, order models.OrderRequest) (*models.OrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach order service: %w", err)
	}
	defer resp.Body.Close()

	var reply orderReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode order service response: %w", err)
	}

	if !reply.Success {
		if reply.Error != "" {
			return nil, fmt.Errorf("order rejected: %s", reply.Error)
		}
		return nil, fmt.Errorf("order service returned error status: %d", resp.StatusCode)
	}

	c.log.Info("order placed",
		"order_id", reply.OrderID,
		"status", resp.StatusCode,
	)

	return &models.OrderResponse{Success: true, OrderID: reply.OrderID}, nil
}
