package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // HR staff - full record access
	RoleEmployee Role = "employee" // Regular employee
)

// ParseRole maps an externally supplied role string to a known role.
// Unrecognized values fall back to the most restrictive role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleHR:
		return RoleHR
	case RoleEmployee:
		return RoleEmployee
	}
	return RoleEmployee
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	EmployeeID      *int64
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsHR checks if the user is HR staff.
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}
