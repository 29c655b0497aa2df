package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

// Session resolves the session cookie to a user and injects it into the
// request context. Anonymous requests pass through untouched; routes that
// need identity stack RequireAuth / RequireRole on top.
func Session(sessions ports.SessionStore, users ports.UserRepository, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			userID, err := sessions.Resolve(ctx, cookie.Value)
			if err != nil {
				return err
			}
			if userID == "" {
				return next(c)
			}

			user, err := users.FindByID(ctx, userID)
			if err != nil {
				// A stale session referencing a vanished user stays anonymous.
				if errors.Is(err, domain.ErrUserNotFound) {
					return next(c)
				}
				return err
			}

			c.Set("user", user)

			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("user").(*domain.User); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control on authenticated requests.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*domain.User)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
