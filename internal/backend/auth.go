package backend

import (
	"context"
	"errors"
	"net/http"
)

// Login exchanges administrator credentials for a fresh token. Implements
// session.LoginTransport.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/admin/login", payload, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("backend login response missing token")
	}
	return resp.Token, nil
}
