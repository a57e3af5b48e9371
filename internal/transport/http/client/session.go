package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"hrdesk/internal/transport/http/api"
)

// Login opens a backend session. The backend redirects away from the login
// page on success and re-renders it on bad credentials.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	resp, cancel, err := c.do(ctx, EndpointLogin, http.MethodPost, c.endpointURL("/login", nil),
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	if isRedirect(resp) && !redirectsToLogin(resp) {
		return nil
	}
	return ErrInvalidCredentials
}

func (c *Client) Status(ctx context.Context) (api.StatusResponse, error) {
	resp, cancel, err := c.do(ctx, EndpointStatus, http.MethodGet, c.endpointURL("/status", nil), nil, "")
	if err != nil {
		return api.StatusResponse{}, err
	}
	defer cancel()
	defer resp.Body.Close()

	var out api.StatusResponse
	if err := decode(EndpointStatus, resp, &out); err != nil {
		return api.StatusResponse{}, err
	}
	return out, nil
}
