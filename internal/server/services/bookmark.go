package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/linkvault/internal/common"
	"github.com/avoronov/linkvault/internal/dbx"
	"github.com/avoronov/linkvault/internal/server/models"
	"github.com/avoronov/linkvault/internal/server/repositories/bookmarks"
	"github.com/avoronov/linkvault/internal/server/repositories/repomanager"
)

// BookmarkService implements owner-scoped bookmark CRUD. Reads are
// pre-filtered by owner; mutations fetch the record and compare owners, so a
// caller touching someone else's bookmark gets common.ErrorForbidden while a
// missing one stays common.ErrorNotFound.
type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

func (s *BookmarkService) Create(ctx context.Context, ownerID, title, link, description string) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{
		OwnerID:     ownerID,
		Title:       title,
		Link:        link,
		Description: description,
	}

	repo := s.repomanager.Bookmarks(s.db)

	bookmark, err := repo.Create(ctx, bookmark)
	if err != nil {
		return nil, fmt.Errorf("error creating bookmark: %w", err)
	}

	return bookmark, nil
}

// List returns all of the owner's bookmarks in creation order. No bookmarks
// is an empty slice, not an error.
func (s *BookmarkService) List(ctx context.Context, ownerID string) ([]*models.Bookmark, error) {
	repo := s.repomanager.Bookmarks(s.db)

	list, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}

	return list, nil
}

// Get returns the bookmark only if it belongs to ownerID; anything else is
// common.ErrorNotFound.
func (s *BookmarkService) Get(ctx context.Context, ownerID, id string) (*models.Bookmark, error) {
	repo := s.repomanager.Bookmarks(s.db)

	bookmark, err := repo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching bookmark: %w", err)
	}

	return bookmark, nil
}

// Update applies a partial edit after the owner check; nil fields are left
// unchanged. The read and write share one transaction.
func (s *BookmarkService) Update(ctx context.Context, ownerID, id string, title, link, description *string) (*models.Bookmark, error) {
	var updated *models.Bookmark

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Bookmarks(tx)

		bookmark, err := s.fetchOwned(ctx, repo, ownerID, id)
		if err != nil {
			return err
		}

		if title != nil {
			bookmark.Title = *title
		}
		if link != nil {
			bookmark.Link = *link
		}
		if description != nil {
			bookmark.Description = *description
		}

		updated, err = repo.Update(ctx, bookmark)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the bookmark after the owner check. The read and delete
// share one transaction.
func (s *BookmarkService) Delete(ctx context.Context, ownerID, id string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Bookmarks(tx)

		if _, err := s.fetchOwned(ctx, repo, ownerID, id); err != nil {
			return err
		}

		return repo.Delete(ctx, id)
	})
}

// fetchOwned loads a bookmark by id and enforces the owner check.
func (s *BookmarkService) fetchOwned(ctx context.Context, repo bookmarks.Repository, ownerID, id string) (*models.Bookmark, error) {
	bookmark, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching bookmark: %w", err)
	}
	if bookmark.OwnerID != ownerID {
		return nil, common.ErrorForbidden
	}
	return bookmark, nil
}
