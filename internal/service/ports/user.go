package ports

import (
	"context"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetBySubject(ctx context.Context, subject string) (*domain.User, error)
	SetRole(ctx context.Context, id string, role domain.Role) error
	GetOrganizerProfile(ctx context.Context, userID string) (*domain.OrganizerProfile, error)
	UpsertOrganizerProfile(ctx context.Context, p *domain.OrganizerProfile) error
}
