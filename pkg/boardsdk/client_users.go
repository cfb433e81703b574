package boardsdk

import (
	"context"
	"net/http"
)

// Register creates a member account and returns its id.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login stores the session cookies in the client's jar.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout asks the server to expire both cookies. It never fails on an
// already-dead session.
func (c *SDKClient) Logout(ctx context.Context) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/logout", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh trades the refresh cookie for a new token pair.
func (c *SDKClient) Refresh(ctx context.Context) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/refresh", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
