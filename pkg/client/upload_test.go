package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/caterers/upload-image", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "kitchen.jpg", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "image bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"image_url": "http://minio:9000/eventconnect/caterers/abc.jpg",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	url, err := c.UploadImage(context.Background(), "caterers", "kitchen.jpg",
		strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/eventconnect/caterers/abc.jpg", url)
}

func TestClient_UploadImage_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid image type"})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	_, err := c.UploadImage(context.Background(), "ngos", "doc.pdf", strings.NewReader("x"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
