package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"taskboard/internal/access"
	"taskboard/internal/apperrors"
)

const (
	principalKey = "principal"
	jtiKey       = "jti"
)

// Authenticate parses the Bearer token, rejects revoked sessions and stores
// the request-scoped Principal on the context. Handlers never read identity
// from anywhere else.
func (h *Handler) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return sendError(c, &apperrors.Error{
				Kind:     apperrors.KindAuthentication,
				Messages: []string{"missing token"},
			})
		}

		claims, err := h.jwtService.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			return sendError(c, &apperrors.Error{
				Kind:     apperrors.KindAuthentication,
				Messages: []string{"invalid token"},
			})
		}

		revoked, err := h.tokenStore.IsRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return sendError(c, err)
		}
		if revoked {
			return sendError(c, &apperrors.Error{
				Kind:     apperrors.KindAuthentication,
				Messages: []string{"session terminated"},
			})
		}

		c.Set(principalKey, claims.Principal())
		c.Set(jtiKey, claims.ID)
		return next(c)
	}
}

// RequireAdmin sits behind Authenticate on the admin group.
func (h *Handler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !access.IsAdmin(principalFrom(c)) {
			return sendError(c, apperrors.NotAuthorized())
		}
		return next(c)
	}
}

// RateLimit guards the unauthenticated auth endpoints with a shared burst
// limiter.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, Response{
					Status: "error",
					Errors: []string{"too many requests"},
					Code:   http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) access.Principal {
	if p, ok := c.Get(principalKey).(access.Principal); ok {
		return p
	}
	return access.Principal{}
}

func jtiFrom(c echo.Context) string {
	if jti, ok := c.Get(jtiKey).(string); ok {
		return jti
	}
	return ""
}
