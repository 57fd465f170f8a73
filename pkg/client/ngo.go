package client

import (
	"context"
	"net/http"
)

func (c *Client) RegisterNGO(ctx context.Context, in RegisterNGOInput) (*NGO, error) {
	var out NGO
	if err := c.do(ctx, http.MethodPost, "/api/ngos/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NgoMe(ctx context.Context) (*NgoMe, error) {
	var out NgoMe
	if err := c.do(ctx, http.MethodGet, "/api/ngos/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitDocument(ctx context.Context, in SubmitDocumentInput) (*Document, error) {
	var out Document
	if err := c.do(ctx, http.MethodPost, "/api/ngos/documents", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	var out []Document
	if err := c.do(ctx, http.MethodGet, "/api/ngos/documents", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DocumentsStatus(ctx context.Context) (*DocumentsStatus, error) {
	var out DocumentsStatus
	if err := c.do(ctx, http.MethodGet, "/api/ngos/documents/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NGOProfile(ctx context.Context) (*NGOProfile, error) {
	var out NGOProfile
	if err := c.do(ctx, http.MethodGet, "/api/ngo/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNGOProfile(ctx context.Context, in NGOProfileInput) (*NGOProfile, error) {
	var out NGOProfile
	if err := c.do(ctx, http.MethodPost, "/api/ngo/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNGOProfile(ctx context.Context, in NGOProfileInput) (*NGOProfile, error) {
	var out NGOProfile
	if err := c.do(ctx, http.MethodPut, "/api/ngo/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
