package ports

import (
	"context"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type Notifier interface {
	NotifyBookingRequested(ctx context.Context, caterer *domain.User, event *domain.Event)
	NotifyBookingResponded(ctx context.Context, organizer *domain.User, event *domain.Event, status domain.BookingStatus)
	NotifyBookingExpired(ctx context.Context, organizer *domain.User, event *domain.Event)
	NotifySurplusAvailable(ctx context.Context, recipient *domain.User, event *domain.Event)
}
