package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Identify resolves the identity-provider subject to a local user,
// creating an unassigned user on first sight.
func (s *UserService) Identify(ctx context.Context, subject, email string) (*domain.User, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: empty subject", domain.ErrUnauthenticated)
	}

	user, err := s.repo.GetBySubject(ctx, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user = &domain.User{
		ID:        uuid.New().String(),
		Subject:   subject,
		Email:     email,
		Role:      domain.RoleUnassigned,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// SelectRole assigns a role to an unassigned user. Reassignment is
// rejected; admin cannot be self-assigned.
func (s *UserService) SelectRole(ctx context.Context, userID string, role domain.Role) error {
	if !role.Assignable() {
		return fmt.Errorf("%w: role %q is not assignable", domain.ErrValidation, role)
	}

	if err := s.repo.SetRole(ctx, userID, role); err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	return nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) OrganizerProfile(ctx context.Context, userID string) (*domain.OrganizerProfile, error) {
	return s.repo.GetOrganizerProfile(ctx, userID)
}

func (s *UserService) SaveOrganizerProfile(ctx context.Context, userID string, input domain.OrganizerProfileInput) (*domain.OrganizerProfile, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	profile := &domain.OrganizerProfile{
		ID:               uuid.New().String(),
		UserID:           userID,
		FullName:         input.FullName,
		OrganizationName: input.OrganizationName,
		Phone:            input.Phone,
		City:             input.City,
		ProfileImageURL:  input.ProfileImageURL,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := s.repo.UpsertOrganizerProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("save organizer profile: %w", err)
	}

	return profile, nil
}
