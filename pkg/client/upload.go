package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadImage posts an image for the given kind ("ngos", "caterers" or
// "organizers") and returns the stored image URL.
func (c *Client) UploadImage(ctx context.Context, kind, filename string, r io.Reader) (string, error) {
	token, err := c.tokens.Token(ctx, false)
	if err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err = io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	var out struct {
		ImageURL string `json:"image_url"`
	}
	err = c.send(ctx, http.MethodPost, "/api/"+kind+"/upload-image", nil,
		token, w.FormDataContentType(), &buf, &out)
	if err != nil {
		return "", err
	}

	return out.ImageURL, nil
}
