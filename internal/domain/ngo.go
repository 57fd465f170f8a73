package domain

import "time"

type NGOStatus string

const (
	NGOStatusPending   NGOStatus = "PENDING"
	NGOStatusVerified  NGOStatus = "VERIFIED"
	NGOStatusRejected  NGOStatus = "REJECTED"
	NGOStatusSuspended NGOStatus = "SUSPENDED"
)

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// DocumentTypes the verification flow accepts.
var DocumentTypes = []string{"REG_CERT", "PAN", "80G", "12A", "TRUST_DEED"}

func ValidDocumentType(t string) bool {
	for _, dt := range DocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

type NGO struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number"`
	Status             NGOStatus `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type NGODocument struct {
	ID        string         `json:"id"`
	NgoID     string         `json:"ngo_id"`
	Type      string         `json:"document_type"`
	FileURL   string         `json:"file_url"`
	Status    DocumentStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// NGORecord is what the role gate inspects: whether the caller has an
// NGO at all, and whether any documents were submitted yet.
type NGORecord struct {
	Exists            bool      `json:"exists"`
	NgoID             string    `json:"ngo_id"`
	Status            NGOStatus `json:"status"`
	DocumentsUploaded bool      `json:"documents_uploaded"`
}

type NGOProfile struct {
	NgoID           string    `json:"ngo_id"`
	Name            string    `json:"name"`
	EstablishedYear *string   `json:"established_year"`
	About           string    `json:"about"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	ImageURL        *string   `json:"image_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type NGOProfileInput struct {
	Name            string
	EstablishedYear *string
	About           string
	Email           string
	Phone           string
	Address         string
	Latitude        *float64
	Longitude       *float64
	ImageURL        *string
}

// AdminNGO is the admin review projection: the NGO plus every document
// it submitted.
type AdminNGO struct {
	NGO       NGO           `json:"ngo"`
	Documents []NGODocument `json:"documents"`
}
