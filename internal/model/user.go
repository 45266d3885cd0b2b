package model

// User roles shown in the admin panel role selector.
const (
	RoleUser    = "User"
	RoleManager = "Manager"
	RoleAdmin   = "Admin"
)

// User account statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User is a managed account in the admin users table. The password hash is
// only set for accounts that can sign in; it never leaves the server.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	PasswordHash string `json:"-"`
}

// ValidRole reports whether role is one of the selectable roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleManager || role == RoleAdmin
}

// ValidStatus reports whether status is a known account status.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
