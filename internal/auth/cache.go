package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// CachedVerifier keeps verified identities in redis so that every request
// does not round-trip to the identity provider. Tokens are stored by their
// sha256 digest, never raw.
type CachedVerifier struct {
	inner  Verifier
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedVerifier(inner Verifier, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedVerifier {
	return &CachedVerifier{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	key := tokenKey(token)

	raw, err := v.client.Get(ctx, key).Result()
	if err == nil {
		var id Identity
		if err = json.Unmarshal([]byte(raw), &id); err == nil {
			return &id, nil
		}
		v.logger.Warn("corrupt identity cache entry", logger.String("error", err.Error()))
	} else if !errors.Is(err, redis.Nil) {
		v.logger.Warn("identity cache read failed", logger.String("error", err.Error()))
	}

	id, err := v.inner.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(id)
	if err != nil {
		return id, nil
	}
	if err = v.client.Set(ctx, key, data, v.ttl).Err(); err != nil {
		v.logger.Warn("identity cache write failed", logger.String("error", err.Error()))
	}

	return id, nil
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:token:" + hex.EncodeToString(sum[:])
}
