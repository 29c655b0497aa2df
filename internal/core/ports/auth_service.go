package ports

import (
	"context"

	"github.com/salonspot/masters-api/internal/core/domain"
)

// RegisterInput carries the registration request.
//
// Role is only honored when RoleAuthorized is set by the boundary layer
// (admin session or an explicitly permissive install); otherwise new
// accounts default to the client role.
type RegisterInput struct {
	Email          string
	Password       string
	Role           string
	Name           string
	Specialty      string
	Photo          string
	RoleAuthorized bool
}

// AuthResult pairs the authenticated user with a freshly minted session
// token. The boundary layer decides how the token travels (cookie).
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves a token to its user, or (nil, nil) when the
	// token is anonymous or stale.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
