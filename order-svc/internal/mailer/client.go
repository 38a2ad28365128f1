// Package mailer talks to the email relay process. Callers treat every send as
// best-effort; a failed attempt is returned as an error and never retried.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"orderiq/order-svc/internal/notify"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

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

// Send posts {type, to, details} to the relay. Non-200 responses surface the
// relay's error string.
func (c *Client) Send(ctx context.Context, event notify.Event) error {
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
		body, _ := io.ReadAll(resp.Body)
		var relayErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &relayErr) == nil && relayErr.Error != "" {
			return fmt.Errorf("email relay: %s", relayErr.Error)
		}
		return fmt.Errorf("email relay: unexpected status %d", resp.StatusCode)
	}
	return nil
}

var _ notify.Sender = (*Client)(nil)
