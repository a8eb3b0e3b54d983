package portal

import (
	"context"
	"net/http"
)

// AuthResult is the payload of the placeholder login/logout endpoints.
type AuthResult struct {
	Message         string `json:"message"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
}

// AuthStatus is the payload of the auth status endpoint.
type AuthStatus struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// SeedResult is the payload of the seed endpoint.
type SeedResult struct {
	Message string `json:"message"`
}

// Login calls the always-succeed login endpoint.
func (c *Client) Login(ctx context.Context) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout calls the logout endpoint.
func (c *Client) Logout(ctx context.Context) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AuthStatus reports the (static) server-side auth status.
func (c *Client) AuthStatus(ctx context.Context) (*AuthStatus, error) {
	var res AuthStatus
	if err := c.do(ctx, http.MethodGet, "/auth/status", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Seed asks the server to insert the sample data set.
func (c *Client) Seed(ctx context.Context) (*SeedResult, error) {
	var res SeedResult
	if err := c.do(ctx, http.MethodPost, "/seed", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
