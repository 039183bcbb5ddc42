package bookmarks

import (
	"context"

	"github.com/avoronov/linkvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	// ListByOwner returns the owner's bookmarks ordered by creation time.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Bookmark, error)
	// GetByOwner fetches a bookmark only if it belongs to ownerID. A bookmark
	// owned by someone else is indistinguishable from an absent one.
	GetByOwner(ctx context.Context, ownerID, id string) (*models.Bookmark, error)
	// GetByID fetches a bookmark regardless of owner. Used by mutations that
	// must tell "someone else's" (forbidden) apart from "absent" (not found).
	GetByID(ctx context.Context, id string) (*models.Bookmark, error)
	Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	Delete(ctx context.Context, id string) error
}
