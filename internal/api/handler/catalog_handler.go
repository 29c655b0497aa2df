package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonspot/masters-api/internal/core/ports"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListMasters returns the public master listing.
//
// @Summary      List masters
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.PublicProfile
// @Router       /api/masters [get]
func (h *CatalogHandler) ListMasters(c echo.Context) error {
	profiles, err := h.catalogService.ListMasters(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}
