package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

// ProfileService lets a master edit their own display fields.
type ProfileService struct {
	repo     ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, sessions: sessions, logger: logger}
}

// UpdateProfile resolves the token, gates on the master role, then applies
// the patch. Nothing is written until both checks pass.
func (s *ProfileService) UpdateProfile(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		// A session outliving its user record counts as unauthenticated.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if user.Role != domain.RoleMaster {
		return nil, domain.ErrForbidden
	}

	if patch.Empty() {
		return user, nil
	}

	updated, err := s.repo.UpdateFields(ctx, user.ID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("profile updated")

	return updated, nil
}
