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

type EventService struct {
	repo     ports.EventRepo
	ngoRepo  ports.NGORepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	ngoRepo ports.NGORepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:     repo,
		ngoRepo:  ngoRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *EventService) Predict(input domain.PredictionInput) (*domain.Prediction, error) {
	return PredictFood(input)
}

func (s *EventService) Create(ctx context.Context, organizerID string, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: event_name is required", domain.ErrValidation)
	}

	prediction, err := PredictFood(input.Prediction)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		OrganizerID:     organizerID,
		Name:            input.Name,
		Type:            input.Prediction.EventType,
		Attendees:       input.Prediction.Attendees,
		DurationHours:   input.Prediction.DurationHours,
		MealStyle:       input.Prediction.MealStyle,
		LocationType:    input.Prediction.LocationType,
		Season:          input.Prediction.Season,
		EstimatedFoodKg: prediction.EstimatedFoodKg,
		Unit:            prediction.Unit,
		Venue:           input.Venue,
		Status:          domain.EventStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", organizerID),
		logger.String("event_name", event.Name),
	)

	return event, nil
}

func (s *EventService) MyEvents(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return s.repo.ListByOrganizer(ctx, organizerID)
}

// Complete records the prepared/consumed quantities. Only events in
// CREATED or BOOKED can be completed. A surplus (prepared > consumed)
// requires a pickup location and ends in SURPLUS_AVAILABLE; otherwise
// the location must be absent and the event ends in COMPLETED.
func (s *EventService) Complete(ctx context.Context, organizerID, eventID string, input domain.CompleteEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrForbidden
	}
	switch event.Status {
	case domain.EventStatusCreated, domain.EventStatusBooked:
	default:
		return nil, domain.ErrEventNotOpen
	}

	if input.FoodPreparedKg < 0 || input.FoodConsumedKg < 0 {
		return nil, fmt.Errorf("%w: food quantities must not be negative", domain.ErrValidation)
	}

	surplus := input.FoodPreparedKg > input.FoodConsumedKg
	if surplus && input.SurplusPickup == nil {
		return nil, fmt.Errorf("%w: surplus_location is required when food_prepared exceeds food_consumed", domain.ErrValidation)
	}
	if !surplus && input.SurplusPickup != nil {
		return nil, fmt.Errorf("%w: surplus_location must be omitted when there is no surplus", domain.ErrValidation)
	}

	event.FoodPreparedKg = &input.FoodPreparedKg
	event.FoodConsumedKg = &input.FoodConsumedKg
	event.SurplusPickup = input.SurplusPickup
	event.UpdatedAt = time.Now().UTC()
	if surplus {
		event.Status = domain.EventStatusSurplusAvailable
	} else {
		event.Status = domain.EventStatusCompleted
	}

	if err = s.repo.Complete(ctx, event); err != nil {
		return nil, fmt.Errorf("complete event: %w", err)
	}

	s.logger.Info("event completed",
		logger.String("event_id", event.ID),
		logger.String("status", string(event.Status)),
	)

	if surplus {
		go s.notifySurplus(context.WithoutCancel(ctx), event)
	}

	return event, nil
}

func (s *EventService) notifySurplus(ctx context.Context, event *domain.Event) {
	recipients, err := s.ngoRepo.ListVerifiedRecipients(ctx)
	if err != nil {
		s.logger.Error("failed to list surplus recipients",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range recipients {
		s.notifier.NotifySurplusAvailable(ctx, r, event)
	}
}
