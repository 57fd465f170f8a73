package ports

import (
	"context"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type NGORepo interface {
	Create(ctx context.Context, n *domain.NGO) error
	GetByID(ctx context.Context, id string) (*domain.NGO, error)
	GetByUser(ctx context.Context, userID string) (*domain.NGO, error)
	SetStatus(ctx context.Context, id string, status domain.NGOStatus) error
	ListWithDocuments(ctx context.Context) ([]*domain.AdminNGO, error)

	CreateDocument(ctx context.Context, d *domain.NGODocument) error
	ListDocuments(ctx context.Context, ngoID string) ([]*domain.NGODocument, error)
	SetDocumentStatus(ctx context.Context, docID string, status domain.DocumentStatus) error

	GetProfile(ctx context.Context, ngoID string) (*domain.NGOProfile, error)
	UpsertProfile(ctx context.Context, p *domain.NGOProfile) error

	// ListVerifiedRecipients returns the users behind VERIFIED NGOs,
	// for surplus pickup notifications.
	ListVerifiedRecipients(ctx context.Context) ([]*domain.User, error)
}
