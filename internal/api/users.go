package api

import (
	"context"
	"net/http"

	"github.com/magabrotheeeer/datadrive/internal/models"
)

// Login POST /login.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, call{
		resource: "session", action: "log in",
		method: http.MethodPost, path: "/login",
		body: creds, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup POST /signup.
func (c *Client) Signup(ctx context.Context, req models.Signup) (*models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, call{
		resource: "session", action: "sign up",
		method: http.MethodPost, path: "/signup",
		body: req, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser GET /user.
func (c *Client) GetUser(ctx context.Context) (*models.User, error) {
	var out models.User
	err := c.do(ctx, call{
		resource: "user", action: "fetch user details",
		method: http.MethodGet, path: "/user",
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUsername PUT /user/username.
func (c *Client) UpdateUsername(ctx context.Context, username string) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "user", action: "update username",
		method: http.MethodPut, path: "/user/username",
		body: map[string]string{"username": username},
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFullName PUT /user/full_name.
func (c *Client) UpdateFullName(ctx context.Context, fullName string) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "user", action: "update full name",
		method: http.MethodPut, path: "/user/full_name",
		body: map[string]string{"full_name": fullName},
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount DELETE /user.
func (c *Client) DeleteAccount(ctx context.Context) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "user", action: "delete account",
		method: http.MethodDelete, path: "/user",
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSettings GET /user/settings.
func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	err := c.do(ctx, call{
		resource: "settings", action: "fetch settings",
		method: http.MethodGet, path: "/user/settings",
		auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSettings POST /user/settings.
func (c *Client) CreateSettings(ctx context.Context, s models.Settings) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "settings", action: "create settings",
		method: http.MethodPost, path: "/user/settings",
		body: s, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings PUT /user/settings. nil-поля не сериализуются (omitempty).
func (c *Client) UpdateSettings(ctx context.Context, s models.Settings) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		resource: "settings", action: "update settings",
		method: http.MethodPut, path: "/user/settings",
		body: s, auth: true, out: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
