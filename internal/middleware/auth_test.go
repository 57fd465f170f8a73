package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/auth"
	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type stubVerifier struct {
	identity *auth.Identity
	err      error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (*auth.Identity, error) {
	return s.identity, s.err
}

type stubIdentityService struct {
	user *domain.User
	err  error

	subject string
	email   string
}

func (s *stubIdentityService) Identify(_ context.Context, subject, email string) (*domain.User, error) {
	s.subject = subject
	s.email = email
	return s.user, s.err
}

func authRouter(verifier auth.Verifier, users IdentityService) http.Handler {
	r := ginext.New("test")
	r.Use(Auth(verifier, users))
	r.GET("/who", func(c *ginext.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, ginext.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, user)
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	r := authRouter(&stubVerifier{}, &stubIdentityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authRouter(&stubVerifier{err: auth.ErrInvalidToken}, &stubIdentityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_VerifierUnavailable(t *testing.T) {
	r := authRouter(&stubVerifier{err: errors.New("connection refused")}, &stubIdentityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuth_ResolvesUser(t *testing.T) {
	users := &stubIdentityService{
		user: &domain.User{ID: "u1", Subject: "auth0|42", Email: "a@b.c", Role: domain.RoleNGO},
	}
	r := authRouter(&stubVerifier{identity: &auth.Identity{Subject: "auth0|42", Email: "a@b.c"}}, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "auth0|42", users.subject)
	assert.Equal(t, "a@b.c", users.email)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := authRouter(&stubVerifier{}, &stubIdentityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Allows(t *testing.T) {
	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set("currentUser", &domain.User{ID: "u1", Role: domain.RoleAdmin})
		c.Next()
	})
	r.Use(RequireRole(domain.RoleAdmin))
	r.GET("/admin", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Rejects(t *testing.T) {
	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set("currentUser", &domain.User{ID: "u1", Role: domain.RoleCaterer})
		c.Next()
	})
	r.Use(RequireRole(domain.RoleAdmin))
	r.GET("/admin", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_NoUser(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequireRole(domain.RoleAdmin))
	r.GET("/admin", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
