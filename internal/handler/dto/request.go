package dto

type PredictFoodRequest struct {
	EventType     string `json:"event_type" binding:"required"`
	Attendees     int    `json:"attendees" binding:"required,gt=0"`
	DurationHours int    `json:"duration_hours" binding:"required,gt=0"`
	MealStyle     string `json:"meal_style" binding:"required"`
	LocationType  string `json:"location_type" binding:"required"`
	Season        string `json:"season" binding:"required"`
}

type CreateEventRequest struct {
	EventName     string   `json:"event_name" binding:"required"`
	EventType     string   `json:"event_type" binding:"required"`
	Attendees     int      `json:"attendees" binding:"required,gt=0"`
	DurationHours int      `json:"duration_hours" binding:"required,gt=0"`
	MealStyle     string   `json:"meal_style" binding:"required"`
	LocationType  string   `json:"location_type" binding:"required"`
	Season        string   `json:"season" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	Pincode       string   `json:"pincode" binding:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type CompleteEventRequest struct {
	FoodPrepared    float64          `json:"food_prepared" binding:"required,gt=0"`
	FoodConsumed    float64          `json:"food_consumed" binding:"gte=0"`
	SurplusLocation *LocationRequest `json:"surplus_location"`
}

type LocationRequest struct {
	Address      string   `json:"address" binding:"required"`
	City         string   `json:"city"`
	Pincode      string   `json:"pincode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType string   `json:"location_type"`
}

type OrganizerProfileRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	OrganizationName string  `json:"organization_name"`
	Phone            string  `json:"phone" binding:"required"`
	City             string  `json:"city"`
	ProfileImageURL  *string `json:"profile_image_url"`
}

type CatererProfileRequest struct {
	BusinessName    string   `json:"business_name" binding:"required"`
	City            string   `json:"city" binding:"required"`
	PricePerPlate   float64  `json:"price_per_plate" binding:"required,gt=0"`
	MinCapacity     int      `json:"min_capacity" binding:"gte=0"`
	MaxCapacity     int      `json:"max_capacity" binding:"required,gt=0"`
	VegSupported    bool     `json:"veg_supported"`
	NonVegSupported bool     `json:"nonveg_supported"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Phone           *string  `json:"phone"`
	ImageURL        *string  `json:"image_url"`
	Services        []string `json:"services"`
}

type RegisterNGORequest struct {
	Name               string `json:"name" binding:"required"`
	RegistrationNumber string `json:"registration_number" binding:"required"`
}

type SubmitDocumentRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	FileURL      string `json:"file_url" binding:"required"`
}

type NGOProfileRequest struct {
	Name            string   `json:"name" binding:"required"`
	EstablishedYear *string  `json:"established_year"`
	About           string   `json:"about"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	ImageURL        *string  `json:"image_url"`
}
