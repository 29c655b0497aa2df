package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

// AuthService implements registration, login, logout and session lookup.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, sessions: sessions, logger: logger}
}

// Register creates the account and immediately establishes a session for
// it: registration and first login are fused to save a round trip.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	// Friendly pre-check; the repository's unique index remains the
	// authority under concurrent registration.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := domain.RoleClient
	if input.RoleAuthorized && domain.ValidRole(input.Role) {
		role = input.Role
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Name:         input.Name,
		Specialty:    input.Specialty,
		Photo:        input.Photo,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Establish(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login verifies the credentials and establishes a fresh session. An
// unknown email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Establish(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{User: user, Token: token}, nil
}

// Logout revokes the session. An anonymous token is rejected rather than
// silently accepted so the boundary can answer 401.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("session revoked")
	return nil
}

// CurrentUser returns the user a token resolves to, or nil for anonymous
// and stale sessions.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
