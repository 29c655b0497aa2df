package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonspot/masters-api/internal/core/domain"
)

// CookieConfig controls how the session token travels. The core only
// defines the token-to-identity contract; cookie attributes live here at
// the boundary.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// sessionToken reads the session cookie; "" when absent.
func sessionToken(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// sessionUser returns the identity injected by the Session middleware,
// or nil for anonymous requests.
func sessionUser(c echo.Context) *domain.User {
	user, _ := c.Get("user").(*domain.User)
	return user
}

// setSessionCookie attaches the token as an HttpOnly cookie. Cross-site
// frontends need SameSite=None, which browsers only accept with Secure.
func setSessionCookie(c echo.Context, cfg CookieConfig, token string) {
	cookie := &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.Secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	c.SetCookie(cookie)
}

// clearSessionCookie expires the session cookie on the client. The
// attributes must mirror setSessionCookie or cross-site browsers will
// not match the deletion against the original cookie.
func clearSessionCookie(c echo.Context, cfg CookieConfig) {
	cookie := &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.Secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	c.SetCookie(cookie)
}
