package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
	"github.com/JahnaviYelishala1/eventconnect/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	catererRepo ports.CatererRepo
	userRepo    ports.UserRepo
	notifier    ports.Notifier
	requestTTL  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	catererRepo ports.CatererRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	requestTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		catererRepo: catererRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		requestTTL:  requestTTL,
		logger:      logger,
	}
}

// Request creates a pending booking request from the organizer's event
// to the caterer. An event accepts requests until one is accepted.
func (s *BookingService) Request(ctx context.Context, organizerID, eventID, catererID string) (*domain.Booking, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	switch event.Status {
	case domain.EventStatusCreated, domain.EventStatusBookingRequested:
	default:
		return nil, domain.ErrEventNotBookable
	}

	caterer, err := s.catererRepo.GetByID(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("get caterer: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   eventID,
		CatererID: catererID,
		Status:    domain.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bookingRepo.CreateRequest(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking request: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", eventID),
		logger.String("caterer_id", catererID),
	)

	if catererUser, uerr := s.userRepo.GetByID(ctx, caterer.UserID); uerr == nil {
		go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), catererUser, event)
	}

	return booking, nil
}

// Respond applies the caterer's accept/reject decision to a pending
// request addressed to them.
func (s *BookingService) Respond(ctx context.Context, catererUserID, bookingID string, status domain.BookingStatus) error {
	if status != domain.BookingStatusAccepted && status != domain.BookingStatusRejected {
		return fmt.Errorf("%w: status must be ACCEPTED or REJECTED", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	profile, err := s.catererRepo.GetByUser(ctx, catererUserID)
	if err != nil {
		return fmt.Errorf("get caterer profile: %w", err)
	}
	if booking.CatererID != profile.ID {
		return domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return domain.ErrBookingNotPending
	}

	if err = s.bookingRepo.Respond(ctx, bookingID, status); err != nil {
		return fmt.Errorf("respond booking: %w", err)
	}

	s.logger.Info("booking responded",
		logger.String("booking_id", bookingID),
		logger.String("status", string(status)),
	)

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	if organizer, uerr := s.userRepo.GetByID(ctx, event.OrganizerID); uerr == nil {
		go s.notifier.NotifyBookingResponded(context.WithoutCancel(ctx), organizer, event, status)
	}

	return nil
}

func (s *BookingService) CatererRequests(ctx context.Context, catererUserID string) ([]*domain.BookingRequest, error) {
	profile, err := s.catererRepo.GetByUser(ctx, catererUserID)
	if err != nil {
		return nil, fmt.Errorf("get caterer profile: %w", err)
	}
	return s.bookingRepo.ListByCaterer(ctx, profile.ID)
}

func (s *BookingService) EventStatus(ctx context.Context, organizerID, eventID string) (*domain.EventBookingStatus, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	return s.bookingRepo.StatusForEvent(ctx, eventID)
}

// ExpireStale rejects pending requests older than the configured TTL.
// Run by the scheduler.
func (s *BookingService) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireStale(ctx, s.requestTTL)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale booking requests expired",
			logger.Int("count", len(expired)),
		)
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		event, err := s.eventRepo.GetByID(ctx, b.EventID)
		if err != nil {
			s.logger.Error("failed to get event for expiry notification",
				logger.String("event_id", b.EventID),
			)
			continue
		}

		organizer, err := s.userRepo.GetByID(ctx, event.OrganizerID)
		if err != nil {
			s.logger.Error("failed to get organizer for expiry notification",
				logger.String("user_id", event.OrganizerID),
			)
			continue
		}

		s.notifier.NotifyBookingExpired(ctx, organizer, event)
	}
}
