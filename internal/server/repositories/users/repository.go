package users

import (
	"context"

	"github.com/avoronov/linkvault/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Update persists the mutable profile fields of an existing user.
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
