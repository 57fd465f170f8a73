package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusAccepted BookingStatus = "ACCEPTED"
	BookingStatusRejected BookingStatus = "REJECTED"
	BookingStatusExpired  BookingStatus = "EXPIRED"
)

type Booking struct {
	ID        string        `json:"booking_id"`
	EventID   string        `json:"event_id"`
	CatererID string        `json:"caterer_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookingRequest is what the caterer sees in the incoming queue: the
// booking joined with the event it is for.
type BookingRequest struct {
	Booking Booking `json:"booking"`
	Event   Event   `json:"event"`
}

// EventBookingStatus is the organizer-side view of an event's booking:
// the accepted (or latest) request with the caterer's contact details.
type EventBookingStatus struct {
	Status        BookingStatus `json:"status"`
	CatererName   *string       `json:"caterer_name"`
	PricePerPlate *float64      `json:"price_per_plate"`
	CatererPhone  *string       `json:"caterer_phone"`
}
