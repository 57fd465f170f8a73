package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports"
)

type NGOService struct {
	repo   ports.NGORepo
	logger logger.Logger
}

func NewNGOService(repo ports.NGORepo, logger logger.Logger) *NGOService {
	return &NGOService{repo: repo, logger: logger}
}

func (s *NGOService) Register(ctx context.Context, userID, name, registrationNumber string) (*domain.NGO, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if registrationNumber == "" {
		return nil, fmt.Errorf("%w: registration_number is required", domain.ErrValidation)
	}

	ngo := &domain.NGO{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               name,
		RegistrationNumber: registrationNumber,
		Status:             domain.NGOStatusPending,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, ngo); err != nil {
		return nil, fmt.Errorf("register ngo: %w", err)
	}

	s.logger.Info("ngo registered",
		logger.String("ngo_id", ngo.ID),
		logger.String("user_id", userID),
	)

	return ngo, nil
}

// Me reports the caller's NGO registration state for the role gate. An
// unregistered user yields exists=false, not an error.
func (s *NGOService) Me(ctx context.Context, userID string) (*domain.NGORecord, error) {
	ngo, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNGONotFound) {
			return &domain.NGORecord{Exists: false}, nil
		}
		return nil, fmt.Errorf("get ngo: %w", err)
	}

	docs, err := s.repo.ListDocuments(ctx, ngo.ID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return &domain.NGORecord{
		Exists:            true,
		NgoID:             ngo.ID,
		Status:            ngo.Status,
		DocumentsUploaded: len(docs) > 0,
	}, nil
}

func (s *NGOService) SubmitDocument(ctx context.Context, userID, docType, fileURL string) (*domain.NGODocument, error) {
	if !domain.ValidDocumentType(docType) {
		return nil, fmt.Errorf("%w: unknown document_type %q", domain.ErrValidation, docType)
	}
	if fileURL == "" {
		return nil, fmt.Errorf("%w: file_url is required", domain.ErrValidation)
	}

	ngo, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get ngo: %w", err)
	}

	doc := &domain.NGODocument{
		ID:        uuid.New().String(),
		NgoID:     ngo.ID,
		Type:      docType,
		FileURL:   fileURL,
		Status:    domain.DocumentStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.repo.CreateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return doc, nil
}

func (s *NGOService) Documents(ctx context.Context, userID string) ([]*domain.NGODocument, error) {
	ngo, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get ngo: %w", err)
	}
	return s.repo.ListDocuments(ctx, ngo.ID)
}

func (s *NGOService) Profile(ctx context.Context, userID string) (*domain.NGOProfile, error) {
	ngo, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get ngo: %w", err)
	}
	return s.repo.GetProfile(ctx, ngo.ID)
}

func (s *NGOService) SaveProfile(ctx context.Context, userID string, input domain.NGOProfileInput) (*domain.NGOProfile, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	ngo, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get ngo: %w", err)
	}

	profile := &domain.NGOProfile{
		NgoID:           ngo.ID,
		Name:            input.Name,
		EstablishedYear: input.EstablishedYear,
		About:           input.About,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ImageURL:        input.ImageURL,
		UpdatedAt:       time.Now().UTC(),
	}
	if err = s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("save ngo profile: %w", err)
	}

	return profile, nil
}

// --- admin review ---

func (s *NGOService) ListAll(ctx context.Context) ([]*domain.AdminNGO, error) {
	return s.repo.ListWithDocuments(ctx)
}

func (s *NGOService) SetStatus(ctx context.Context, ngoID string, status domain.NGOStatus) error {
	switch status {
	case domain.NGOStatusVerified, domain.NGOStatusRejected, domain.NGOStatusSuspended:
	default:
		return fmt.Errorf("%w: status %q is not an admin transition", domain.ErrValidation, status)
	}

	if err := s.repo.SetStatus(ctx, ngoID, status); err != nil {
		return fmt.Errorf("set ngo status: %w", err)
	}

	s.logger.Info("ngo status changed",
		logger.String("ngo_id", ngoID),
		logger.String("status", string(status)),
	)

	return nil
}

func (s *NGOService) ReviewDocument(ctx context.Context, docID string, status domain.DocumentStatus) error {
	switch status {
	case domain.DocumentStatusApproved, domain.DocumentStatusRejected:
	default:
		return fmt.Errorf("%w: status %q is not a review decision", domain.ErrValidation, status)
	}

	if err := s.repo.SetDocumentStatus(ctx, docID, status); err != nil {
		return fmt.Errorf("set document status: %w", err)
	}

	return nil
}
