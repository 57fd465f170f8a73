package ports

import (
	"context"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	// Complete persists the completion fields (prepared, consumed,
	// pickup location) together with the final status.
	Complete(ctx context.Context, e *domain.Event) error
}
