// Package bootstrap holds one-shot startup routines that are not part of
// the service's runtime behavior.
package bootstrap

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

type seedUser struct {
	email     string
	password  string
	role      string
	name      string
	specialty string
	photo     string
}

var demoUsers = []seedUser{
	{email: "admin@demo.local", password: "admin123", role: domain.RoleAdmin, name: "Admin"},
	{email: "anna@demo.local", password: "master123", role: domain.RoleMaster, name: "Anna", specialty: "Manicure"},
	{email: "olga@demo.local", password: "master123", role: domain.RoleMaster, name: "Olga", specialty: "Hair styling"},
}

// Seed inserts the demo accounts through the regular repository path.
// Idempotent: an email that already exists is skipped, so Seed can run on
// every startup.
func Seed(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	for _, su := range demoUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			return err
		}

		_, err = users.Create(ctx, &domain.User{
			Email:        su.email,
			PasswordHash: hash,
			Role:         su.role,
			Name:         su.name,
			Specialty:    su.specialty,
			Photo:        su.photo,
		})
		if errors.Is(err, domain.ErrEmailExists) {
			log.Debug().Str("email", su.email).Msg("demo user already seeded")
			continue
		}
		if err != nil {
			return err
		}
		log.Info().Str("email", su.email).Str("role", su.role).Msg("demo user seeded")
	}
	return nil
}
