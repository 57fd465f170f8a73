package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports/mocks"
)

func TestUserService_Identify_ExistingUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	existing := &domain.User{ID: "u1", Subject: "sub1", Role: domain.RoleOrganizer}
	repo.EXPECT().GetBySubject(mock.Anything, "sub1").Return(existing, nil)

	user, err := svc.Identify(context.Background(), "sub1", "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_Identify_CreatesOnFirstSight(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetBySubject(mock.Anything, "sub1").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Identify(context.Background(), "sub1", "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, "sub1", user.Subject)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, domain.RoleUnassigned, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Identify_EmptySubject(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Identify(context.Background(), "", "a@b.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUserService_SelectRole_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().SetRole(mock.Anything, "u1", domain.RoleCaterer).Return(nil)

	err := svc.SelectRole(context.Background(), "u1", domain.RoleCaterer)

	require.NoError(t, err)
}

func TestUserService_SelectRole_AdminNotAssignable(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	err := svc.SelectRole(context.Background(), "u1", domain.RoleAdmin)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_SelectRole_AlreadyAssigned(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().SetRole(mock.Anything, "u1", domain.RoleNGO).Return(domain.ErrRoleAlreadySet)

	err := svc.SelectRole(context.Background(), "u1", domain.RoleNGO)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoleAlreadySet)
}

func TestUserService_SaveOrganizerProfile_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().UpsertOrganizerProfile(mock.Anything, mock.Anything).Return(nil)

	profile, err := svc.SaveOrganizerProfile(context.Background(), "u1", domain.OrganizerProfileInput{
		FullName: "Asha Rao",
		Phone:    "+91 98450 00000",
		City:     "Bengaluru",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, "Asha Rao", profile.FullName)
}

func TestUserService_SaveOrganizerProfile_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.SaveOrganizerProfile(context.Background(), "u1", domain.OrganizerProfileInput{
		Phone: "+91 98450 00000",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SaveOrganizerProfile(context.Background(), "u1", domain.OrganizerProfileInput{
		FullName: "Asha Rao",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
