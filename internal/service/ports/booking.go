package ports

import (
	"context"
	"time"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type BookingRepo interface {
	// CreateRequest inserts the pending booking and moves the event to
	// BOOKING_REQUESTED in one transaction.
	CreateRequest(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Respond applies the caterer's decision: on accept the event is
	// marked BOOKED and the remaining pending requests for it are
	// rejected; on reject the event returns to CREATED when no other
	// pending request is left.
	Respond(ctx context.Context, bookingID string, status domain.BookingStatus) error
	ListByCaterer(ctx context.Context, catererID string) ([]*domain.BookingRequest, error)
	StatusForEvent(ctx context.Context, eventID string) (*domain.EventBookingStatus, error)
	ExpireStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}
