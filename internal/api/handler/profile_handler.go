package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonspot/masters-api/internal/api/metrics"
	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
	cookies        CookieConfig
}

func NewProfileHandler(profileService ports.ProfileService, cookies CookieConfig) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, cookies: cookies}
}

// updateProfileRequest uses pointers so an omitted field is left alone
// while an explicit empty string clears it. Unknown fields are ignored.
type updateProfileRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Photo     *string `json:"photo"`
}

// Update edits the caller's display fields. Masters only.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.PublicProfile
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/update_profile [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token := sessionToken(c, h.cookies.Name)
	user, err := h.profileService.UpdateProfile(c.Request().Context(), token, ports.ProfilePatch{
		Name:      req.Name,
		Specialty: req.Specialty,
		Photo:     req.Photo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrForbidden) {
			metrics.ProfileUpdatesTotal.WithLabelValues("denied").Inc()
		} else {
			metrics.ProfileUpdatesTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, user.Public())
}
