// Package gateway is the typed client for the RihlaDz admin REST API.
// It issues list, create, update, delete, bulk-delete and status-change
// calls and maps transport failures to the console's error taxonomy.
// The client never retries; every retry is a deliberate user action.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Doer is the transport seam, satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries the connection settings for the API.
type Config struct {
	BaseURL string
	Token   string
	// Client overrides the default transport, mainly for tests.
	Client Doer
}

// Client issues requests against the admin API.
type Client struct {
	baseURL    string
	token      string
	httpClient Doer
}

// NewClient builds a client from the provided config. Timeouts live on
// the transport; the console itself imposes none.
func NewClient(cfg Config) *Client {
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

// do performs one authenticated request and decodes the response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		if json.Unmarshal(respBody, &ae) == nil && ae.Message != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, ae.Message)
		}
		return fmt.Errorf("api error (status %d)", resp.StatusCode)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

// MarkMessageRead flips a contact message to read on the server. The
// backend exposes this as its own endpoint rather than a generic
// status change.
func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/messages/%s/mark-read", id)
	if err := c.do(ctx, http.MethodPut, endpoint, nil, nil); err != nil {
		return &MutationError{Op: "mark-read", Err: err}
	}
	return nil
}
