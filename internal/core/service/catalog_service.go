package service

import (
	"context"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

// CatalogService serves the public master listing.
type CatalogService struct {
	repo ports.UserRepository
}

func NewCatalogService(repo ports.UserRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListMasters projects every master to its public profile, preserving
// insertion order.
func (s *CatalogService) ListMasters(ctx context.Context) ([]domain.PublicProfile, error) {
	masters, err := s.repo.ListByRole(ctx, domain.RoleMaster)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.PublicProfile, 0, len(masters))
	for _, m := range masters {
		profiles = append(profiles, m.Public())
	}
	return profiles, nil
}
