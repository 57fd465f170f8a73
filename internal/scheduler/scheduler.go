package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type bookingExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically expires booking requests that caterers never
// answered, freeing the event for another request.
type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookingService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale booking requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("booking request expired",
			logger.String("booking_id", b.ID),
			logger.String("event_id", b.EventID),
			logger.String("caterer_id", b.CatererID),
		)
	}
}
