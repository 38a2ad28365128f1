package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"orderiq/notify-svc/internal/domain"
	"orderiq/notify-svc/internal/service"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts events to the email relay's single endpoint.
type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: client}
}

func (c *Client) Send(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email relay: unexpected status %d", resp.StatusCode)
	}
	return nil
}

var _ service.RelayClient = (*Client)(nil)
