// Package portal is the client for the school-portal API. It mirrors the
// server's wire shapes exactly; all validation is server-authoritative.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"schoolportal/internal/model"
)

// APIError is the single error shape the client produces. StatusCode is
// zero when the transport itself failed; Body holds the raw response body
// of a failed HTTP exchange when one was received.
type APIError struct {
	Message    string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return e.Message
}

// Client sends JSON requests against a fixed base URL (<origin>/api).
// No retries, no timeouts, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a portal client for the given server origin.
func NewClient(origin string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(origin, "/") + "/api",
		httpClient: &http.Client{},
	}
}

// Announcements returns the announcements resource.
func (c *Client) Announcements() *Resource[model.Announcement] {
	return NewResource[model.Announcement](c, "/announcements")
}

// Quizzes returns the quizzes resource.
func (c *Client) Quizzes() *Resource[model.Quiz] {
	return NewResource[model.Quiz](c, "/quizzes")
}

// Users returns the users resource.
func (c *Client) Users() *Resource[model.User] {
	return NewResource[model.User](c, "/users")
}

// do sends one JSON request and decodes the response into out (skipped when
// out is nil). Failures of any kind surface as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var parsed struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil && parsed.Message != "" {
			return &APIError{Message: parsed.Message, StatusCode: resp.StatusCode, Body: raw}
		}
		return &APIError{
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			StatusCode: resp.StatusCode,
			Body:       raw,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: err.Error(), StatusCode: resp.StatusCode}
	}
	return nil
}
