package domain

import "time"

type Role string

const (
	RoleUnassigned Role = ""
	RoleOrganizer  Role = "event_organizer"
	RoleCaterer    Role = "caterer"
	RoleNGO        Role = "ngo"
	RoleAdmin      Role = "admin"
)

// AssignableRoles are the roles a user may pick on the role-selection
// screen. Admin is granted out of band.
var AssignableRoles = []Role{RoleOrganizer, RoleCaterer, RoleNGO}

func (r Role) Assignable() bool {
	for _, a := range AssignableRoles {
		if r == a {
			return true
		}
	}
	return false
}

type User struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type OrganizerProfile struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	FullName         string    `json:"full_name"`
	OrganizationName string    `json:"organization_name"`
	Phone            string    `json:"phone"`
	City             string    `json:"city"`
	ProfileImageURL  *string   `json:"profile_image_url"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrganizerProfileInput struct {
	FullName         string
	OrganizationName string
	Phone            string
	City             string
	ProfileImageURL  *string
}
