package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/JahnaviYelishala1/eventconnect/internal/auth"
	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

const userContextKey = "currentUser"

type IdentityService interface {
	Identify(ctx context.Context, subject, email string) (*domain.User, error)
}

// Auth verifies the bearer token and resolves it to a local user record,
// creating one on first sight. Unauthenticated requests are rejected
// before any handler runs.
func Auth(verifier auth.Verifier, users IdentityService) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if err == auth.ErrInvalidToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "identity verification failed"})
			return
		}

		user, err := users.Identify(c.Request.Context(), identity.Subject, identity.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "failed to resolve user"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose resolved user holds none of the
// given roles.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "not authenticated"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient role"})
	}
}

func CurrentUser(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
