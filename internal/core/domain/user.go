package domain

import "time"

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserActive      UserStatus = "active"
	UserInvited     UserStatus = "invited"
	UserSuspended   UserStatus = "suspended"
	UserDeactivated UserStatus = "deactivated"
)

// User models an authenticated actor. Role is stored raw as received from the
// source record and normalized at every decision point; ClinicID is empty
// only for super admins, who operate outside any single clinic.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	ClinicID     string     `json:"clinic_id,omitempty"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
