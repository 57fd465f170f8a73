package ports

import (
	"context"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type CatererRepo interface {
	Create(ctx context.Context, p *domain.CatererProfile) error
	Update(ctx context.Context, p *domain.CatererProfile) error
	GetByID(ctx context.Context, id string) (*domain.CatererProfile, error)
	GetByUser(ctx context.Context, userID string) (*domain.CatererProfile, error)
	// ListCandidates returns caterers whose capacity range covers the
	// given attendee count, pre-filtered by the SQL-expressible parts
	// of the filter (price bounds, rating, veg flags).
	ListCandidates(ctx context.Context, attendees int, f domain.MatchFilter) ([]*domain.CatererProfile, error)
}
