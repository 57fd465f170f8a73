package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockEventRepo, *mocks.MockCatererRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	catererRepo := mocks.NewMockCatererRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewBookingService(bookingRepo, eventRepo, catererRepo, userRepo, notifier, 48*time.Hour, newTestLogger(t))
	return svc, bookingRepo, eventRepo, catererRepo, userRepo, notifier
}

func TestBookingService_Request_Success(t *testing.T) {
	svc, bookingRepo, eventRepo, catererRepo, userRepo, notifier := newBookingService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Status: domain.EventStatusCreated}
	caterer := &domain.CatererProfile{ID: "c1", UserID: "cu1"}
	catererUser := &domain.User{ID: "cu1", Role: domain.RoleCaterer}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	catererRepo.EXPECT().GetByID(mock.Anything, "c1").Return(caterer, nil)
	bookingRepo.EXPECT().CreateRequest(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "cu1").Return(catererUser, nil)
	notifier.EXPECT().NotifyBookingRequested(mock.Anything, catererUser, event).Return()

	booking, err := svc.Request(context.Background(), "org1", "e1", "c1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "e1", booking.EventID)
	assert.Equal(t, "c1", booking.CatererID)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Request_NotOwner(t *testing.T) {
	svc, _, eventRepo, _, _, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "someone-else", Status: domain.EventStatusCreated}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Request(context.Background(), "org1", "e1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Request_EventNotBookable(t *testing.T) {
	svc, _, eventRepo, _, _, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Status: domain.EventStatusBooked}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Request(context.Background(), "org1", "e1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotBookable)
}

func TestBookingService_Request_DuplicateRequest(t *testing.T) {
	svc, bookingRepo, eventRepo, catererRepo, _, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Status: domain.EventStatusBookingRequested}
	caterer := &domain.CatererProfile{ID: "c1", UserID: "cu1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	catererRepo.EXPECT().GetByID(mock.Anything, "c1").Return(caterer, nil)
	bookingRepo.EXPECT().CreateRequest(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRequested)

	_, err := svc.Request(context.Background(), "org1", "e1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRequested)
}

func TestBookingService_Request_CatererNotFound(t *testing.T) {
	svc, _, eventRepo, catererRepo, _, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org1", Status: domain.EventStatusCreated}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	catererRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCatererNotFound)

	_, err := svc.Request(context.Background(), "org1", "e1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatererNotFound)
}

func TestBookingService_Respond_Accept(t *testing.T) {
	svc, bookingRepo, eventRepo, catererRepo, userRepo, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", CatererID: "c1", Status: domain.BookingStatusPending}
	profile := &domain.CatererProfile{ID: "c1", UserID: "cu1"}
	event := &domain.Event{ID: "e1", OrganizerID: "org1"}
	organizer := &domain.User{ID: "org1"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	catererRepo.EXPECT().GetByUser(mock.Anything, "cu1").Return(profile, nil)
	bookingRepo.EXPECT().Respond(mock.Anything, "b1", domain.BookingStatusAccepted).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	notifier.EXPECT().NotifyBookingResponded(mock.Anything, organizer, event, domain.BookingStatusAccepted).Return()

	err := svc.Respond(context.Background(), "cu1", "b1", domain.BookingStatusAccepted)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Respond_EventNoLongerOpen(t *testing.T) {
	svc, bookingRepo, _, catererRepo, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", CatererID: "c1", Status: domain.BookingStatusPending}
	profile := &domain.CatererProfile{ID: "c1", UserID: "cu1"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	catererRepo.EXPECT().GetByUser(mock.Anything, "cu1").Return(profile, nil)
	bookingRepo.EXPECT().Respond(mock.Anything, "b1", domain.BookingStatusAccepted).
		Return(domain.ErrEventNotBookable)

	err := svc.Respond(context.Background(), "cu1", "b1", domain.BookingStatusAccepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotBookable)
}

func TestBookingService_Respond_InvalidStatus(t *testing.T) {
	svc, _, _, _, _, _ := newBookingService(t)

	err := svc.Respond(context.Background(), "cu1", "b1", domain.BookingStatusExpired)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Respond_WrongCaterer(t *testing.T) {
	svc, bookingRepo, _, catererRepo, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", CatererID: "c1", Status: domain.BookingStatusPending}
	profile := &domain.CatererProfile{ID: "other", UserID: "cu1"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	catererRepo.EXPECT().GetByUser(mock.Anything, "cu1").Return(profile, nil)

	err := svc.Respond(context.Background(), "cu1", "b1", domain.BookingStatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Respond_NotPending(t *testing.T) {
	svc, bookingRepo, _, catererRepo, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", CatererID: "c1", Status: domain.BookingStatusAccepted}
	profile := &domain.CatererProfile{ID: "c1", UserID: "cu1"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	catererRepo.EXPECT().GetByUser(mock.Anything, "cu1").Return(profile, nil)

	err := svc.Respond(context.Background(), "cu1", "b1", domain.BookingStatusAccepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_CatererRequests(t *testing.T) {
	svc, bookingRepo, _, catererRepo, _, _ := newBookingService(t)

	profile := &domain.CatererProfile{ID: "c1", UserID: "cu1"}
	requests := []*domain.BookingRequest{
		{Booking: domain.Booking{ID: "b1", EventID: "e1", CatererID: "c1"}},
	}

	catererRepo.EXPECT().GetByUser(mock.Anything, "cu1").Return(profile, nil)
	bookingRepo.EXPECT().ListByCaterer(mock.Anything, "c1").Return(requests, nil)

	result, err := svc.CatererRequests(context.Background(), "cu1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_EventStatus_NotOwner(t *testing.T) {
	svc, _, eventRepo, _, _, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "someone-else"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.EventStatus(context.Background(), "org1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_ExpireStale_Success(t *testing.T) {
	svc, bookingRepo, eventRepo, _, userRepo, notifier := newBookingService(t)

	expired := []*domain.Booking{
		{ID: "b1", EventID: "e1", CatererID: "c1", Status: domain.BookingStatusExpired},
		{ID: "b2", EventID: "e2", CatererID: "c2", Status: domain.BookingStatusExpired},
	}
	event1 := &domain.Event{ID: "e1", OrganizerID: "org1"}
	event2 := &domain.Event{ID: "e2", OrganizerID: "org2"}
	org1 := &domain.User{ID: "org1"}
	org2 := &domain.User{ID: "org2"}

	bookingRepo.EXPECT().ExpireStale(mock.Anything, 48*time.Hour).Return(expired, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event1, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(event2, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(org1, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org2").Return(org2, nil)
	notifier.EXPECT().NotifyBookingExpired(mock.Anything, org1, event1).Return()
	notifier.EXPECT().NotifyBookingExpired(mock.Anything, org2, event2).Return()

	result, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_ExpireStale_NoneExpired(t *testing.T) {
	svc, bookingRepo, _, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().ExpireStale(mock.Anything, 48*time.Hour).Return(nil, nil)

	result, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_ExpireStale_RepoError(t *testing.T) {
	svc, bookingRepo, _, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().ExpireStale(mock.Anything, 48*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.ExpireStale(context.Background())

	require.Error(t, err)
}
