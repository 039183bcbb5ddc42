package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListBookmarks(c echo.Context) error {
	list, err := s.bookmarks.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return s.domainError(c, err)
	}

	// an empty list must serialize as [], not null
	resp := make([]bookmarkResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, newBookmarkResponse(b))
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateBookmark(c echo.Context) error {
	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookmark, err := s.bookmarks.Create(c.Request().Context(), currentUser(c).ID, req.Title, req.Link, req.Description)
	if err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusCreated, newBookmarkResponse(bookmark))
}

func (s *Server) handleGetBookmark(c echo.Context) error {
	bookmark, err := s.bookmarks.Get(c.Request().Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusOK, newBookmarkResponse(bookmark))
}

func (s *Server) handleUpdateBookmark(c echo.Context) error {
	var req updateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookmark, err := s.bookmarks.Update(c.Request().Context(), currentUser(c).ID, c.Param("id"),
		req.Title, req.Link, req.Description)
	if err != nil {
		return s.domainError(c, err)
	}

	return c.JSON(http.StatusOK, newBookmarkResponse(bookmark))
}

func (s *Server) handleDeleteBookmark(c echo.Context) error {
	if err := s.bookmarks.Delete(c.Request().Context(), currentUser(c).ID, c.Param("id")); err != nil {
		return s.domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
