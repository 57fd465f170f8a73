package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPVerifier_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/userinfo", r.URL.Path)

		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			json.NewEncoder(w).Encode(Identity{Subject: "auth0|42", Email: "a@b.c"})
		case "Bearer empty-subject":
			json.NewEncoder(w).Encode(Identity{Email: "a@b.c"})
		case "Bearer flaky":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	v := NewHTTPVerifier(srv.URL, 2*time.Second)

	t.Run("valid token", func(t *testing.T) {
		id, err := v.Verify(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "auth0|42", id.Subject)
		assert.Equal(t, "a@b.c", id.Email)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject treated as invalid", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "empty-subject")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("provider error is not invalid token", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "flaky")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidToken)
	})
}
