package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonspot/masters-api/internal/api/metrics"
	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

type AuthHandler struct {
	authService   ports.AuthService
	cookies       CookieConfig
	allowSelfRole bool
}

func NewAuthHandler(authService ports.AuthService, cookies CookieConfig, allowSelfRole bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, allowSelfRole: allowSelfRole}
}

type registerRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=client master admin"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Photo     string `json:"photo"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  domain.PublicProfile `json:"user"`
	Token string               `json:"token"`
}

// Register creates a new account and logs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	// A requested role is only honored for admin callers (or permissive
	// demo installs); everyone else becomes a client.
	actor := sessionUser(c)
	authorized := h.allowSelfRole || (actor != nil && actor.Role == domain.RoleAdmin)

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Name:           req.Name,
		Specialty:      req.Specialty,
		Photo:          req.Photo,
		RoleAuthorized: authorized,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(result.User.Role).Inc()
	setSessionCookie(c, h.cookies, result.Token)

	return c.JSON(http.StatusCreated, authResponse{User: result.User.Public(), Token: result.Token})
}

// Login authenticates by email and password and issues a fresh session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidCredentials
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, h.cookies, result.Token)

	return c.JSON(http.StatusOK, authResponse{User: result.User.Public(), Token: result.Token})
}

// Logout revokes the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := sessionToken(c, h.cookies.Name)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	clearSessionCookie(c, h.cookies)

	return c.JSON(http.StatusOK, map[string]string{"msg": "logged out"})
}

// CurrentUser returns the caller's profile, or null for anonymous callers.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.PublicProfile
// @Router       /api/me [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	token := sessionToken(c, h.cookies.Name)
	user, err := h.authService.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, user.Public())
}
