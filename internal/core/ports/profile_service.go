package ports

import (
	"context"

	"github.com/salonspot/masters-api/internal/core/domain"
)

type ProfileService interface {
	// UpdateProfile applies the patch to the profile of the user the
	// token resolves to. Requires an authenticated master; the role
	// check runs strictly after token resolution and before any write.
	UpdateProfile(ctx context.Context, token string, patch ProfilePatch) (*domain.User, error)
}
