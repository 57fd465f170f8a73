package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

func TestPredictFood_Deterministic(t *testing.T) {
	input := domain.PredictionInput{
		EventType:     "corporate",
		Attendees:     100,
		DurationHours: 3,
		MealStyle:     "buffet",
		LocationType:  "indoor",
		Season:        "winter",
	}

	first, err := PredictFood(input)
	require.NoError(t, err)

	second, err := PredictFood(input)
	require.NoError(t, err)

	assert.Equal(t, first.EstimatedFoodKg, second.EstimatedFoodKg)
	assert.Equal(t, "kg", first.Unit)
	assert.Positive(t, first.EstimatedFoodKg)
}

func TestPredictFood_ScalesWithAttendees(t *testing.T) {
	small := domain.PredictionInput{
		EventType: "corporate", Attendees: 50, DurationHours: 2,
		MealStyle: "buffet", LocationType: "indoor", Season: "summer",
	}
	large := small
	large.Attendees = 200

	smallPred, err := PredictFood(small)
	require.NoError(t, err)
	largePred, err := PredictFood(large)
	require.NoError(t, err)

	assert.Greater(t, largePred.EstimatedFoodKg, smallPred.EstimatedFoodKg)
}

func TestPredictFood_DurationCapped(t *testing.T) {
	base := domain.PredictionInput{
		EventType: "birthday", Attendees: 80, DurationHours: 11,
		MealStyle: "packed meal", LocationType: "outdoor", Season: "monsoon",
	}
	longer := base
	longer.DurationHours = 24

	capped, err := PredictFood(base)
	require.NoError(t, err)
	beyond, err := PredictFood(longer)
	require.NoError(t, err)

	assert.Equal(t, capped.EstimatedFoodKg, beyond.EstimatedFoodKg)
}

func TestPredictFood_NormalizesInput(t *testing.T) {
	input := domain.PredictionInput{
		EventType: "  Corporate ", Attendees: 10, DurationHours: 1,
		MealStyle: "BUFFET", LocationType: "Indoor", Season: "Winter",
	}

	pred, err := PredictFood(input)

	require.NoError(t, err)
	assert.Positive(t, pred.EstimatedFoodKg)
}

func TestPredictFood_Validation(t *testing.T) {
	valid := domain.PredictionInput{
		EventType: "corporate", Attendees: 10, DurationHours: 1,
		MealStyle: "buffet", LocationType: "indoor", Season: "summer",
	}

	cases := []struct {
		name   string
		mutate func(*domain.PredictionInput)
	}{
		{"zero attendees", func(in *domain.PredictionInput) { in.Attendees = 0 }},
		{"negative duration", func(in *domain.PredictionInput) { in.DurationHours = -1 }},
		{"unknown meal style", func(in *domain.PredictionInput) { in.MealStyle = "banquet" }},
		{"unknown event type", func(in *domain.PredictionInput) { in.EventType = "rave" }},
		{"unknown season", func(in *domain.PredictionInput) { in.Season = "autumn" }},
		{"unknown location type", func(in *domain.PredictionInput) { in.LocationType = "underwater" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			_, err := PredictFood(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
