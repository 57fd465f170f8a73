package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

const foodUnit = "kg"

// Per-person base quantity in kg by meal style.
var mealStyleBaseKg = map[string]float64{
	"buffet":      0.55,
	"packed meal": 0.40,
	"snacks":      0.25,
}

var eventTypeFactor = map[string]float64{
	"corporate":  1.0,
	"birthday":   1.1,
	"conference": 0.9,
}

var seasonFactor = map[string]float64{
	"summer":  0.95,
	"winter":  1.05,
	"monsoon": 1.0,
}

var locationTypeFactor = map[string]float64{
	"indoor":  1.0,
	"outdoor": 1.05,
	"home":    0.95,
}

// PredictFood estimates the food quantity for an event. The estimate is
// deterministic: per-person base by meal style, scaled by event type,
// season, location type and duration (long events eat more, capped at
// double the base).
func PredictFood(input domain.PredictionInput) (*domain.Prediction, error) {
	if err := validatePrediction(input); err != nil {
		return nil, err
	}

	base := mealStyleBaseKg[normalize(input.MealStyle)]
	factor := eventTypeFactor[normalize(input.EventType)] *
		seasonFactor[normalize(input.Season)] *
		locationTypeFactor[normalize(input.LocationType)]

	duration := 1.0 + 0.1*float64(input.DurationHours-1)
	if duration > 2.0 {
		duration = 2.0
	}

	total := base * factor * duration * float64(input.Attendees)

	return &domain.Prediction{
		EstimatedFoodKg: math.Round(total*100) / 100,
		Unit:            foodUnit,
	}, nil
}

func validatePrediction(input domain.PredictionInput) error {
	if input.Attendees <= 0 {
		return fmt.Errorf("%w: attendees must be positive", domain.ErrValidation)
	}
	if input.DurationHours <= 0 {
		return fmt.Errorf("%w: duration_hours must be positive", domain.ErrValidation)
	}
	if _, ok := mealStyleBaseKg[normalize(input.MealStyle)]; !ok {
		return fmt.Errorf("%w: unknown meal_style %q", domain.ErrValidation, input.MealStyle)
	}
	if _, ok := eventTypeFactor[normalize(input.EventType)]; !ok {
		return fmt.Errorf("%w: unknown event_type %q", domain.ErrValidation, input.EventType)
	}
	if _, ok := seasonFactor[normalize(input.Season)]; !ok {
		return fmt.Errorf("%w: unknown season %q", domain.ErrValidation, input.Season)
	}
	if _, ok := locationTypeFactor[normalize(input.LocationType)]; !ok {
		return fmt.Errorf("%w: unknown location_type %q", domain.ErrValidation, input.LocationType)
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
