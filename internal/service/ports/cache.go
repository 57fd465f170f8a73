package ports

import (
	"context"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

// MatchCache keeps recent caterer-match results. Misses and cache
// errors are equivalent: the caller recomputes.
type MatchCache interface {
	Get(ctx context.Context, key string) ([]domain.MatchResult, bool)
	Set(ctx context.Context, key string, results []domain.MatchResult)
}
