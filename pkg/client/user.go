package client

import (
	"context"
	"net/http"
	"net/url"
)

// Protected resolves the caller's role and email.
func (c *Client) Protected(ctx context.Context) (*Protected, error) {
	var out Protected
	if err := c.do(ctx, http.MethodGet, "/api/protected", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SelectRole(ctx context.Context, role string) error {
	q := url.Values{"role": {role}}
	return c.do(ctx, http.MethodPost, "/api/users/select-role", q, nil, nil)
}

func (c *Client) OrganizerProfile(ctx context.Context) (*OrganizerProfile, error) {
	var out OrganizerProfile
	if err := c.do(ctx, http.MethodGet, "/api/organizers/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrganizerProfile(ctx context.Context, in OrganizerProfileInput) (*OrganizerProfile, error) {
	var out OrganizerProfile
	if err := c.do(ctx, http.MethodPost, "/api/organizers/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrganizerProfile(ctx context.Context, in OrganizerProfileInput) (*OrganizerProfile, error) {
	var out OrganizerProfile
	if err := c.do(ctx, http.MethodPut, "/api/organizers/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
