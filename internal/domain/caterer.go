package domain

import "time"

type CatererProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	BusinessName    string    `json:"business_name"`
	City            string    `json:"city"`
	PricePerPlate   float64   `json:"price_per_plate"`
	MinCapacity     int       `json:"min_capacity"`
	MaxCapacity     int       `json:"max_capacity"`
	VegSupported    bool      `json:"veg_supported"`
	NonVegSupported bool      `json:"nonveg_supported"`
	Rating          float64   `json:"rating"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Phone           *string   `json:"phone"`
	ImageURL        *string   `json:"image_url"`
	Services        []string  `json:"services"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CatererProfileInput struct {
	BusinessName    string
	City            string
	PricePerPlate   float64
	MinCapacity     int
	MaxCapacity     int
	VegSupported    bool
	NonVegSupported bool
	Latitude        *float64
	Longitude       *float64
	Phone           *string
	ImageURL        *string
	Services        []string
}

const (
	MatchSortPrice    = "price"
	MatchSortRating   = "rating"
	MatchSortDistance = "distance"
)

// MatchFilter narrows and orders the caterer search for one event.
// Nil fields mean "no constraint".
type MatchFilter struct {
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	VegOnly    bool
	NonVegOnly bool
	SortBy     string
}

// MatchResult is a caterer candidate for an event, with the distance
// from the venue when both sides carry coordinates.
type MatchResult struct {
	Caterer    CatererProfile `json:"caterer"`
	DistanceKm float64        `json:"distance_km"`
}
