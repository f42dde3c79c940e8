package models

import "time"

type User struct {
	ID             int64     `db:"id" json:"id"`
	GoogleID       string    `db:"google_id" json:"google_id"`
	Email          string    `db:"email" json:"email"`
	Name           string    `db:"name" json:"name"`
	Role           string    `db:"role" json:"role"`
	ProfilePicture string    `db:"profile_picture" json:"profile_picture"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

const (
	RoleOwner           = "owner"
	RoleAdmin           = "admin"
	RolePropertyAdvisor = "property_advisor"
	RoleClient          = "client"
)

// CanApprove reports whether a role is privileged enough to approve posts
// awaiting review. Property advisors and clients are not.
func CanApprove(role string) bool {
	return role == RoleOwner || role == RoleAdmin
}
