package apiclient

import (
	"context"
	"errors"
	"net/http"

	"roomfinder/models"

	"go.uber.org/zap"
)

// Login authenticates against the upstream API and stores the returned
// bearer token in the session. The login payload arrives either as the
// canonical envelope or flat {token, user}.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]any{"email": email, "password": password}
	payload, err := c.publicRequest(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}

	container := payload
	if data, ok := payload["data"].(map[string]any); ok {
		container = data
	}
	token, _ := container["token"].(string)
	if token == "" {
		return nil, &RequestError{Status: http.StatusUnauthorized, Message: "Login response carried no token"}
	}
	if err := c.SetToken(ctx, token); err != nil {
		return nil, err
	}

	if userObj, ok := container["user"].(map[string]any); ok {
		return decodeObject[models.User](userObj)
	}
	return nil, &RequestError{Status: http.StatusBadGateway, Message: "Login response carried no user"}
}

// Logout clears the session. The upstream call is best-effort: a failed
// revocation still drops the local token.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.request(ctx, http.MethodPost, "/auth/logout", nil); err != nil {
		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			c.logger.Warn("logout call failed, clearing local session anyway", zap.Error(err))
		}
	}
	return c.SetToken(ctx, "")
}

// Profile fetches the authenticated user's account.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	payload, err := c.request(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	if data, ok := payload["data"].(map[string]any); ok {
		return decodeObject[models.User](data)
	}
	return decodeObject[models.User](payload)
}

// HostApplication fetches the caller's host application, if any. Used to
// route non-approved hosts to the application flow.
func (c *Client) HostApplication(ctx context.Context) (*models.HostApplication, error) {
	payload, err := c.request(ctx, http.MethodGet, "/host/application", nil)
	if err != nil {
		return nil, err
	}
	if data, ok := payload["data"].(map[string]any); ok {
		return decodeObject[models.HostApplication](data)
	}
	return decodeObject[models.HostApplication](payload)
}

// SubmitHostApplication applies to become a host.
func (c *Client) SubmitHostApplication(ctx context.Context, reason string) error {
	body := map[string]any{"reason": reason}
	_, err := c.request(ctx, http.MethodPost, "/host/application", body)
	return err
}
