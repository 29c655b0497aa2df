package ports

import (
	"context"

	"github.com/salonspot/masters-api/internal/core/domain"
)

// ProfilePatch carries a partial update of a user's display fields.
// Nil pointers mean "leave unchanged"; only these three fields are
// mutable through the profile API.
type ProfilePatch struct {
	Name      *string
	Specialty *string
	Photo     *string
}

// Empty reports whether the patch touches no fields.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Specialty == nil && p.Photo == nil
}

// UserRepository is the authoritative store of user records. Email
// uniqueness is owned here: Create must check-and-insert atomically so
// concurrent registrations with the same email yield exactly one success.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRole returns users in insertion order.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Create inserts the user and returns it with its assigned ID.
	// Returns domain.ErrEmailExists on an email collision.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateFields applies the patch and returns the updated user.
	// Returns domain.ErrUserNotFound if id does not exist.
	UpdateFields(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
}
