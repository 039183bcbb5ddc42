package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleGetMe(c echo.Context) error {
	return c.JSON(http.StatusOK, newUserResponse(currentUser(c)))
}

func (s *Server) handleUpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := s.users.UpdateProfile(c.Request().Context(), currentUser(c).ID, req.FirstName, req.LastName)
	if err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}
