package client

import (
	"context"
	"net/http"
)

func (c *Client) AdminNGOs(ctx context.Context) ([]AdminNGO, error) {
	var out []AdminNGO
	if err := c.do(ctx, http.MethodGet, "/api/admin/ngos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyNGO(ctx context.Context, ngoID string) error {
	return c.do(ctx, http.MethodPatch, "/api/admin/ngos/"+ngoID+"/verify", nil, nil, nil)
}

func (c *Client) RejectNGO(ctx context.Context, ngoID string) error {
	return c.do(ctx, http.MethodPatch, "/api/admin/ngos/"+ngoID+"/reject", nil, nil, nil)
}

func (c *Client) SuspendNGO(ctx context.Context, ngoID string) error {
	return c.do(ctx, http.MethodPatch, "/api/admin/ngos/"+ngoID+"/suspend", nil, nil, nil)
}

func (c *Client) ApproveDocument(ctx context.Context, documentID string) error {
	return c.do(ctx, http.MethodPatch, "/api/admin/documents/"+documentID+"/approve", nil, nil, nil)
}

func (c *Client) RejectDocument(ctx context.Context, documentID string) error {
	return c.do(ctx, http.MethodPatch, "/api/admin/documents/"+documentID+"/reject", nil, nil, nil)
}
