// Package httpapi exposes the public JSON API: auth, profile, and bookmark
// endpoints over echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/avoronov/linkvault/internal/logging"
	"github.com/avoronov/linkvault/internal/server/services"
)

type Server struct {
	echo      *echo.Echo
	address   string
	logger    logging.Logger
	users     *services.UserService
	bookmarks *services.BookmarkService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, bs *services.BookmarkService, secretKey string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	s := &Server{
		echo:      e,
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		bookmarks: bs,
		jwtSecret: []byte(secretKey),
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	s.echo.POST("/auth/signup", s.handleSignup)
	s.echo.POST("/auth/signin", s.handleSignin)

	authed := s.echo.Group("", s.requireAuth)
	authed.GET("/users/me", s.handleGetMe)
	authed.PATCH("/users", s.handleUpdateUser)

	authed.GET("/bookmarks", s.handleListBookmarks)
	authed.POST("/bookmarks", s.handleCreateBookmark)
	authed.GET("/bookmarks/:id", s.handleGetBookmark)
	authed.PATCH("/bookmarks/:id", s.handleUpdateBookmark)
	authed.DELETE("/bookmarks/:id", s.handleDeleteBookmark)
}

// Handler exposes the composed routing tree, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
