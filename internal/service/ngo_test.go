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

func newNGOService(t *testing.T) (*NGOService, *mocks.MockNGORepo) {
	t.Helper()
	repo := mocks.NewMockNGORepo(t)
	return NewNGOService(repo, newTestLogger(t)), repo
}

func TestNGOService_Register_Success(t *testing.T) {
	svc, repo := newNGOService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ngo, err := svc.Register(context.Background(), "u1", "Feed Forward", "NGO/2020/1234")

	require.NoError(t, err)
	assert.Equal(t, domain.NGOStatusPending, ngo.Status)
	assert.Equal(t, "u1", ngo.UserID)
	assert.NotEmpty(t, ngo.ID)
}

func TestNGOService_Register_AlreadyExists(t *testing.T) {
	svc, repo := newNGOService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNGOAlreadyExists)

	_, err := svc.Register(context.Background(), "u1", "Feed Forward", "NGO/2020/1234")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNGOAlreadyExists)
}

func TestNGOService_Register_Validation(t *testing.T) {
	svc, _ := newNGOService(t)

	_, err := svc.Register(context.Background(), "u1", "", "NGO/2020/1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), "u1", "Feed Forward", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNGOService_Me_Unregistered(t *testing.T) {
	svc, repo := newNGOService(t)

	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, domain.ErrNGONotFound)

	record, err := svc.Me(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, record.Exists)
	assert.False(t, record.DocumentsUploaded)
}

func TestNGOService_Me_NoDocumentsYet(t *testing.T) {
	svc, repo := newNGOService(t)

	ngo := &domain.NGO{ID: "n1", UserID: "u1", Status: domain.NGOStatusPending}
	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(ngo, nil)
	repo.EXPECT().ListDocuments(mock.Anything, "n1").Return(nil, nil)

	record, err := svc.Me(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, record.Exists)
	assert.False(t, record.DocumentsUploaded)
	assert.Equal(t, domain.NGOStatusPending, record.Status)
}

func TestNGOService_Me_DocumentsUploaded(t *testing.T) {
	svc, repo := newNGOService(t)

	ngo := &domain.NGO{ID: "n1", UserID: "u1", Status: domain.NGOStatusVerified}
	docs := []*domain.NGODocument{{ID: "d1", NgoID: "n1", Type: "PAN"}}
	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(ngo, nil)
	repo.EXPECT().ListDocuments(mock.Anything, "n1").Return(docs, nil)

	record, err := svc.Me(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, record.Exists)
	assert.True(t, record.DocumentsUploaded)
}

func TestNGOService_SubmitDocument_Success(t *testing.T) {
	svc, repo := newNGOService(t)

	ngo := &domain.NGO{ID: "n1", UserID: "u1"}
	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(ngo, nil)
	repo.EXPECT().CreateDocument(mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.SubmitDocument(context.Background(), "u1", "REG_CERT", "http://files/reg.pdf")

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentStatusPending, doc.Status)
	assert.Equal(t, "n1", doc.NgoID)
}

func TestNGOService_SubmitDocument_UnknownType(t *testing.T) {
	svc, _ := newNGOService(t)

	_, err := svc.SubmitDocument(context.Background(), "u1", "AADHAAR", "http://files/x.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNGOService_SubmitDocument_NotRegistered(t *testing.T) {
	svc, repo := newNGOService(t)

	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, domain.ErrNGONotFound)

	_, err := svc.SubmitDocument(context.Background(), "u1", "PAN", "http://files/pan.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNGONotFound)
}

func TestNGOService_SaveProfile_Success(t *testing.T) {
	svc, repo := newNGOService(t)

	ngo := &domain.NGO{ID: "n1", UserID: "u1"}
	repo.EXPECT().GetByUser(mock.Anything, "u1").Return(ngo, nil)
	repo.EXPECT().UpsertProfile(mock.Anything, mock.Anything).Return(nil)

	profile, err := svc.SaveProfile(context.Background(), "u1", domain.NGOProfileInput{
		Name:  "Feed Forward",
		About: "Redistributes surplus food across the city.",
	})

	require.NoError(t, err)
	assert.Equal(t, "n1", profile.NgoID)
}

func TestNGOService_SaveProfile_MissingName(t *testing.T) {
	svc, _ := newNGOService(t)

	_, err := svc.SaveProfile(context.Background(), "u1", domain.NGOProfileInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNGOService_SetStatus_AdminTransitions(t *testing.T) {
	svc, repo := newNGOService(t)

	for _, status := range []domain.NGOStatus{
		domain.NGOStatusVerified, domain.NGOStatusRejected, domain.NGOStatusSuspended,
	} {
		repo.EXPECT().SetStatus(mock.Anything, "n1", status).Return(nil)
		require.NoError(t, svc.SetStatus(context.Background(), "n1", status))
	}
}

func TestNGOService_SetStatus_PendingRejected(t *testing.T) {
	svc, _ := newNGOService(t)

	err := svc.SetStatus(context.Background(), "n1", domain.NGOStatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNGOService_ReviewDocument_Success(t *testing.T) {
	svc, repo := newNGOService(t)

	repo.EXPECT().SetDocumentStatus(mock.Anything, "d1", domain.DocumentStatusApproved).Return(nil)

	err := svc.ReviewDocument(context.Background(), "d1", domain.DocumentStatusApproved)

	require.NoError(t, err)
}

func TestNGOService_ReviewDocument_NotFound(t *testing.T) {
	svc, repo := newNGOService(t)

	repo.EXPECT().SetDocumentStatus(mock.Anything, "missing", domain.DocumentStatusRejected).
		Return(domain.ErrDocumentNotFound)

	err := svc.ReviewDocument(context.Background(), "missing", domain.DocumentStatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestNGOService_ReviewDocument_InvalidDecision(t *testing.T) {
	svc, _ := newNGOService(t)

	err := svc.ReviewDocument(context.Background(), "d1", domain.DocumentStatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
