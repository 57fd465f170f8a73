package client

// Protected is the "who am I" response.
type Protected struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

type PredictFoodInput struct {
	EventType     string `json:"event_type"`
	Attendees     int    `json:"attendees"`
	DurationHours int    `json:"duration_hours"`
	MealStyle     string `json:"meal_style"`
	LocationType  string `json:"location_type"`
	Season        string `json:"season"`
}

type Prediction struct {
	EstimatedFoodQuantity float64 `json:"estimated_food_quantity"`
	Unit                  string  `json:"unit"`
}

type CreateEventInput struct {
	EventName     string   `json:"event_name"`
	EventType     string   `json:"event_type"`
	Attendees     int      `json:"attendees"`
	DurationHours int      `json:"duration_hours"`
	MealStyle     string   `json:"meal_style"`
	LocationType  string   `json:"location_type"`
	Season        string   `json:"season"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Pincode       string   `json:"pincode"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

type Location struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Pincode      string   `json:"pincode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType string   `json:"location_type,omitempty"`
}

type CompleteEventInput struct {
	FoodPrepared    float64   `json:"food_prepared"`
	FoodConsumed    float64   `json:"food_consumed"`
	SurplusLocation *Location `json:"surplus_location,omitempty"`
}

type Event struct {
	ID                    string    `json:"id"`
	EventName             string    `json:"event_name"`
	EventType             string    `json:"event_type"`
	Attendees             int       `json:"attendees"`
	DurationHours         int       `json:"duration_hours"`
	MealStyle             string    `json:"meal_style"`
	LocationType          string    `json:"location_type"`
	Season                string    `json:"season"`
	EstimatedFoodQuantity float64   `json:"estimated_food_quantity"`
	Unit                  string    `json:"unit"`
	Address               string    `json:"address"`
	City                  string    `json:"city"`
	Pincode               string    `json:"pincode"`
	Latitude              *float64  `json:"latitude"`
	Longitude             *float64  `json:"longitude"`
	Status                string    `json:"status"`
	FoodPrepared          *float64  `json:"food_prepared,omitempty"`
	FoodConsumed          *float64  `json:"food_consumed,omitempty"`
	SurplusLocation       *Location `json:"surplus_location,omitempty"`
	CreatedAt             string    `json:"created_at"`
}

type OrganizerProfileInput struct {
	FullName         string  `json:"full_name"`
	OrganizationName string  `json:"organization_name"`
	Phone            string  `json:"phone"`
	City             string  `json:"city"`
	ProfileImageURL  *string `json:"profile_image_url,omitempty"`
}

type OrganizerProfile struct {
	FullName         string  `json:"full_name"`
	OrganizationName string  `json:"organization_name"`
	Phone            string  `json:"phone"`
	City             string  `json:"city"`
	ProfileImageURL  *string `json:"profile_image_url"`
}

type CatererProfileInput struct {
	BusinessName    string   `json:"business_name"`
	City            string   `json:"city"`
	PricePerPlate   float64  `json:"price_per_plate"`
	MinCapacity     int      `json:"min_capacity"`
	MaxCapacity     int      `json:"max_capacity"`
	VegSupported    bool     `json:"veg_supported"`
	NonVegSupported bool     `json:"nonveg_supported"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
	Services        []string `json:"services,omitempty"`
}

type Caterer struct {
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

// MatchFilter narrows and orders caterer matching. Nil or zero fields
// are omitted from the query.
type MatchFilter struct {
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	VegOnly    bool
	NonVegOnly bool
	SortBy     string
}

type Booking struct {
	BookingID string `json:"booking_id"`
	EventID   string `json:"event_id"`
	CatererID string `json:"caterer_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type BookingRequest struct {
	Booking Booking `json:"booking"`
	Event   Event   `json:"event"`
}

type EventBookingStatus struct {
	Status        string   `json:"status"`
	CatererName   *string  `json:"caterer_name,omitempty"`
	PricePerPlate *float64 `json:"price_per_plate,omitempty"`
	CatererPhone  *string  `json:"caterer_phone,omitempty"`
}

type RegisterNGOInput struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
}

type NGO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}

// NgoMe reports whether the caller has an NGO record and how far its
// onboarding has progressed.
type NgoMe struct {
	Exists            bool   `json:"exists"`
	NgoID             string `json:"ngo_id,omitempty"`
	Status            string `json:"status,omitempty"`
	DocumentsUploaded bool   `json:"documents_uploaded"`
}

type SubmitDocumentInput struct {
	DocumentType string `json:"document_type"`
	FileURL      string `json:"file_url"`
}

type Document struct {
	ID           string `json:"id"`
	DocumentType string `json:"document_type"`
	FileURL      string `json:"file_url"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type DocumentsStatus struct {
	Total     int        `json:"total"`
	Approved  int        `json:"approved"`
	Pending   int        `json:"pending"`
	Rejected  int        `json:"rejected"`
	Documents []Document `json:"documents"`
}

type NGOProfileInput struct {
	Name            string   `json:"name"`
	EstablishedYear *string  `json:"established_year,omitempty"`
	About           string   `json:"about"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
}

type NGOProfile struct {
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

type AdminNGO struct {
	NGO
	Documents []Document `json:"documents"`
}
