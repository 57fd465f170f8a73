package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

const matchKeyPrefix = "match:"

// MatchCache stores caterer-match results in Redis. Failures degrade to
// a miss so matching still works when Redis is down.
type MatchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewMatchCache(client *redis.Client, ttl time.Duration, log logger.Logger) *MatchCache {
	return &MatchCache{client: client, ttl: ttl, logger: log}
}

func (c *MatchCache) Get(ctx context.Context, key string) ([]domain.MatchResult, bool) {
	raw, err := c.client.Get(ctx, matchKeyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("match cache read failed", logger.String("error", err.Error()), logger.String("key", key))
		}
		return nil, false
	}

	var results []domain.MatchResult
	if err = json.Unmarshal([]byte(raw), &results); err != nil {
		c.logger.Warn("match cache entry corrupted", logger.String("error", err.Error()), logger.String("key", key))
		return nil, false
	}
	return results, true
}

func (c *MatchCache) Set(ctx context.Context, key string, results []domain.MatchResult) {
	raw, err := json.Marshal(results)
	if err != nil {
		c.logger.Warn("match cache encode failed", logger.String("error", err.Error()), logger.String("key", key))
		return
	}
	if err = c.client.Set(ctx, matchKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("match cache write failed", logger.String("error", err.Error()), logger.String("key", key))
	}
}
