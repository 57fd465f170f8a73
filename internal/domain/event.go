package domain

import "time"

type EventStatus string

const (
	EventStatusCreated          EventStatus = "CREATED"
	EventStatusBookingRequested EventStatus = "BOOKING_REQUESTED"
	EventStatusBooked           EventStatus = "BOOKED"
	EventStatusCompleted        EventStatus = "COMPLETED"
	EventStatusSurplusAvailable EventStatus = "SURPLUS_AVAILABLE"
)

// Location is a street address with optional coordinates, used both for
// the event venue and for the surplus pickup point.
type Location struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Pincode      string   `json:"pincode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType string   `json:"location_type"`
}

type Event struct {
	ID              string      `json:"id"`
	OrganizerID     string      `json:"organizer_id"`
	Name            string      `json:"event_name"`
	Type            string      `json:"event_type"`
	Attendees       int         `json:"attendees"`
	DurationHours   int         `json:"duration_hours"`
	MealStyle       string      `json:"meal_style"`
	LocationType    string      `json:"location_type"`
	Season          string      `json:"season"`
	EstimatedFoodKg float64     `json:"estimated_food_quantity"`
	Unit            string      `json:"unit"`
	Venue           Location    `json:"venue"`
	Status          EventStatus `json:"status"`
	FoodPreparedKg  *float64    `json:"food_prepared"`
	FoodConsumedKg  *float64    `json:"food_consumed"`
	SurplusPickup   *Location   `json:"surplus_location"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// SurplusKg is the positive difference between prepared and consumed
// food, zero before completion.
func (e *Event) SurplusKg() float64 {
	if e.FoodPreparedKg == nil || e.FoodConsumedKg == nil {
		return 0
	}
	if s := *e.FoodPreparedKg - *e.FoodConsumedKg; s > 0 {
		return s
	}
	return 0
}

type PredictionInput struct {
	EventType     string
	Attendees     int
	DurationHours int
	MealStyle     string
	LocationType  string
	Season        string
}

type Prediction struct {
	EstimatedFoodKg float64 `json:"estimated_food_quantity"`
	Unit            string  `json:"unit"`
}

type CreateEventInput struct {
	Prediction PredictionInput
	Name       string
	Venue      Location
}

type CompleteEventInput struct {
	FoodPreparedKg float64
	FoodConsumedKg float64
	SurplusPickup  *Location
}
