// Package services contains server-side business logic. This file implements
// UserService, which handles signup, signin, and profile reads/updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avoronov/linkvault/internal/common"
	"github.com/avoronov/linkvault/internal/server/auth"
	"github.com/avoronov/linkvault/internal/server/config"
	"github.com/avoronov/linkvault/internal/server/models"
	"github.com/avoronov/linkvault/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create an account and mint an access token
// - Login: verify credentials and mint an access token
// - GetByID / UpdateProfile: profile reads and edits for authenticated callers
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h auth.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      h,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user keyed by email and returns an access token for
// it. A taken email yields common.ErrorAlreadyExists; the unique index on the
// users table resolves concurrent signups, not application-level locking.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{Email: email, PasswordHash: digest}
	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateAccessToken(user.ID)
}

// Login verifies the email/password pair and returns a new access token.
// An unknown email and a wrong password yield the same error so callers
// cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	ok, err := s.hasher.Check(user.PasswordHash, password)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	return s.generateAccessToken(user.ID)
}

// GetByID resolves a token subject to the full user record.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// UpdateProfile applies a partial profile edit; nil fields are left unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, id string, firstName, lastName *string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}

	user, err = repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
