package domain

import "time"

const (
	RoleClient = "client"
	RoleMaster = "master"
	RoleAdmin  = "admin"
)

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleMaster, RoleAdmin:
		return true
	}
	return false
}

// User models a registered account. The password hash never leaves the
// server: it is excluded from JSON and from the public projection.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Photo        string    `json:"photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the outward-facing projection of a User: the fields
// shown in the catalog listing and returned by the auth endpoints.
type PublicProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Specialty string `json:"specialty"`
	Role      string `json:"role"`
}

// Public returns the projection of u that is safe to expose to any caller.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Name:      u.Name,
		Photo:     u.Photo,
		Specialty: u.Specialty,
		Role:      u.Role,
	}
}
