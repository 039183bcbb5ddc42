package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avoronov/linkvault/internal/server/auth"
	"github.com/avoronov/linkvault/internal/server/models"
)

const currentUserKey = "current_user"

const bearerPrefix = "Bearer "

// requireAuth guards a route group: it extracts the bearer token, verifies
// it, and resolves the subject to a full user record stored in the request
// context. Every failure mode (missing header, malformed token, bad
// signature, expired token, unknown subject) answers with the same 401 so
// clients learn nothing about which check failed.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, bearerPrefix), s.jwtSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
		}

		user, err := s.users.GetByID(c.Request().Context(), userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
		}

		c.Set(currentUserKey, user)

		return next(c)
	}
}

// currentUser returns the authenticated user attached by requireAuth.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
