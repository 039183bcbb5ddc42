package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronov/linkvault/internal/common"
)

// domainError maps service-layer sentinels onto HTTP responses. Signup
// conflicts and bad credentials both answer 403 with deliberately vague
// messages; everything unexpected becomes a generic 500 and is logged
// server-side only.
func (s *Server) domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return echo.NewHTTPError(http.StatusForbidden, "credentials taken")
	case errors.Is(err, common.ErrorUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, "credentials incorrect")
	case errors.Is(err, common.ErrorForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		s.logger.Error(c.Request().Context(), err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
