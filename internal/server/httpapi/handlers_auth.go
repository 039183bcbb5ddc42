package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleSignup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.domainError(c, err)
	}

	s.logger.Info(c.Request().Context(), "user registered", "email", req.Email)

	return c.JSON(http.StatusCreated, tokenResponse{AccessToken: token})
}

func (s *Server) handleSignin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
