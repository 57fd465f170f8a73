package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified subject behind a bearer token.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
