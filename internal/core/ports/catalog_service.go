package ports

import (
	"context"

	"github.com/salonspot/masters-api/internal/core/domain"
)

type CatalogService interface {
	// ListMasters returns every master profile, publicly projected,
	// in insertion order. No authentication required.
	ListMasters(ctx context.Context) ([]domain.PublicProfile, error)
}
