package dto

import (
	"time"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

type ProtectedResponse struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

type PredictionResponse struct {
	EstimatedFoodQuantity float64 `json:"estimated_food_quantity"`
	Unit                  string  `json:"unit"`
}

type LocationResponse struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Pincode      string   `json:"pincode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType string   `json:"location_type,omitempty"`
}

type EventResponse struct {
	ID                    string            `json:"id"`
	EventName             string            `json:"event_name"`
	EventType             string            `json:"event_type"`
	Attendees             int               `json:"attendees"`
	DurationHours         int               `json:"duration_hours"`
	MealStyle             string            `json:"meal_style"`
	LocationType          string            `json:"location_type"`
	Season                string            `json:"season"`
	EstimatedFoodQuantity float64           `json:"estimated_food_quantity"`
	Unit                  string            `json:"unit"`
	Address               string            `json:"address"`
	City                  string            `json:"city"`
	Pincode               string            `json:"pincode"`
	Latitude              *float64          `json:"latitude"`
	Longitude             *float64          `json:"longitude"`
	Status                string            `json:"status"`
	FoodPrepared          *float64          `json:"food_prepared,omitempty"`
	FoodConsumed          *float64          `json:"food_consumed,omitempty"`
	SurplusLocation       *LocationResponse `json:"surplus_location,omitempty"`
	CreatedAt             string            `json:"created_at"`
}

type CatererResponse struct {
	ID              string   `json:"id"`
	BusinessName    string   `json:"business_name"`
	City            string   `json:"city"`
	PricePerPlate   float64  `json:"price_per_plate"`
	MinCapacity     int      `json:"min_capacity"`
	MaxCapacity     int      `json:"max_capacity"`
	VegSupported    bool     `json:"veg_supported"`
	NonVegSupported bool     `json:"nonveg_supported"`
	Rating          float64  `json:"rating"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Phone           *string  `json:"phone"`
	ImageURL        *string  `json:"image_url"`
	Services        []string `json:"services"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
}

type BookingResponse struct {
	BookingID string `json:"booking_id"`
	EventID   string `json:"event_id"`
	CatererID string `json:"caterer_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type BookingRequestResponse struct {
	Booking BookingResponse `json:"booking"`
	Event   EventResponse   `json:"event"`
}

type EventBookingStatusResponse struct {
	Status        string   `json:"status"`
	CatererName   *string  `json:"caterer_name,omitempty"`
	PricePerPlate *float64 `json:"price_per_plate,omitempty"`
	CatererPhone  *string  `json:"caterer_phone,omitempty"`
}

type NgoResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}

type NgoMeResponse struct {
	Exists            bool   `json:"exists"`
	NgoID             string `json:"ngo_id,omitempty"`
	Status            string `json:"status,omitempty"`
	DocumentsUploaded bool   `json:"documents_uploaded"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	DocumentType string `json:"document_type"`
	FileURL      string `json:"file_url"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type AdminNgoResponse struct {
	NgoResponse
	Documents []DocumentResponse `json:"documents"`
}

type OrganizerProfileResponse struct {
	FullName         string  `json:"full_name"`
	OrganizationName string  `json:"organization_name"`
	Phone            string  `json:"phone"`
	City             string  `json:"city"`
	ProfileImageURL  *string `json:"profile_image_url"`
}

type NGOProfileResponse struct {
	Name            string   `json:"name"`
	EstablishedYear *string  `json:"established_year"`
	About           string   `json:"about"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	ImageURL        *string  `json:"image_url"`
}

type ImageResponse struct {
	ImageURL string `json:"image_url"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		EstimatedFoodQuantity: p.EstimatedFoodKg,
		Unit:                  p.Unit,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:                    e.ID,
		EventName:             e.Name,
		EventType:             e.Type,
		Attendees:             e.Attendees,
		DurationHours:         e.DurationHours,
		MealStyle:             e.MealStyle,
		LocationType:          e.LocationType,
		Season:                e.Season,
		EstimatedFoodQuantity: e.EstimatedFoodKg,
		Unit:                  e.Unit,
		Address:               e.Venue.Address,
		City:                  e.Venue.City,
		Pincode:               e.Venue.Pincode,
		Latitude:              e.Venue.Latitude,
		Longitude:             e.Venue.Longitude,
		Status:                string(e.Status),
		FoodPrepared:          e.FoodPreparedKg,
		FoodConsumed:          e.FoodConsumedKg,
		CreatedAt:             e.CreatedAt.Format(time.RFC3339),
	}
	if e.SurplusPickup != nil {
		resp.SurplusLocation = &LocationResponse{
			Address:      e.SurplusPickup.Address,
			City:         e.SurplusPickup.City,
			Pincode:      e.SurplusPickup.Pincode,
			Latitude:     e.SurplusPickup.Latitude,
			Longitude:    e.SurplusPickup.Longitude,
			LocationType: e.SurplusPickup.LocationType,
		}
	}

	return resp
}

func ToCatererResponse(p *domain.CatererProfile) CatererResponse {
	services := p.Services
	if services == nil {
		services = []string{}
	}

	return CatererResponse{
		ID:              p.ID,
		BusinessName:    p.BusinessName,
		City:            p.City,
		PricePerPlate:   p.PricePerPlate,
		MinCapacity:     p.MinCapacity,
		MaxCapacity:     p.MaxCapacity,
		VegSupported:    p.VegSupported,
		NonVegSupported: p.NonVegSupported,
		Rating:          p.Rating,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Phone:           p.Phone,
		ImageURL:        p.ImageURL,
		Services:        services,
	}
}

func ToMatchResponse(m domain.MatchResult) CatererResponse {
	resp := ToCatererResponse(&m.Caterer)
	if m.DistanceKm >= 0 {
		d := m.DistanceKm
		resp.DistanceKm = &d
	}

	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID: b.ID,
		EventID:   b.EventID,
		CatererID: b.CatererID,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingRequestResponse(r *domain.BookingRequest) BookingRequestResponse {
	return BookingRequestResponse{
		Booking: ToBookingResponse(&r.Booking),
		Event:   ToEventResponse(&r.Event),
	}
}

func ToEventBookingStatusResponse(s *domain.EventBookingStatus) EventBookingStatusResponse {
	return EventBookingStatusResponse{
		Status:        string(s.Status),
		CatererName:   s.CatererName,
		PricePerPlate: s.PricePerPlate,
		CatererPhone:  s.CatererPhone,
	}
}

func ToNgoResponse(n *domain.NGO) NgoResponse {
	return NgoResponse{
		ID:                 n.ID,
		Name:               n.Name,
		RegistrationNumber: n.RegistrationNumber,
		Status:             string(n.Status),
		CreatedAt:          n.CreatedAt.Format(time.RFC3339),
	}
}

func ToNgoMeResponse(r *domain.NGORecord) NgoMeResponse {
	return NgoMeResponse{
		Exists:            r.Exists,
		NgoID:             r.NgoID,
		Status:            string(r.Status),
		DocumentsUploaded: r.DocumentsUploaded,
	}
}

func ToDocumentResponse(d *domain.NGODocument) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		DocumentType: d.Type,
		FileURL:      d.FileURL,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}

func ToAdminNgoResponse(n *domain.AdminNGO) AdminNgoResponse {
	docs := make([]DocumentResponse, 0, len(n.Documents))
	for i := range n.Documents {
		docs = append(docs, ToDocumentResponse(&n.Documents[i]))
	}

	return AdminNgoResponse{
		NgoResponse: ToNgoResponse(&n.NGO),
		Documents:   docs,
	}
}

func ToOrganizerProfileResponse(p *domain.OrganizerProfile) OrganizerProfileResponse {
	return OrganizerProfileResponse{
		FullName:         p.FullName,
		OrganizationName: p.OrganizationName,
		Phone:            p.Phone,
		City:             p.City,
		ProfileImageURL:  p.ProfileImageURL,
	}
}

func ToNGOProfileResponse(p *domain.NGOProfile) NGOProfileResponse {
	return NGOProfileResponse{
		Name:            p.Name,
		EstablishedYear: p.EstablishedYear,
		About:           p.About,
		Email:           p.Email,
		Phone:           p.Phone,
		Address:         p.Address,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		ImageURL:        p.ImageURL,
	}
}
