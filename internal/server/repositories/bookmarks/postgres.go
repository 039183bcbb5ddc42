// Package bookmarks provides the PostgreSQL-backed repository for bookmark
// records.
package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avoronov/linkvault/internal/common"
	"github.com/avoronov/linkvault/internal/dbx"
	"github.com/avoronov/linkvault/internal/server/models"
)

// PostgresRepository implements bookmark storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	if bookmark.ID == "" {
		bookmark.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO bookmarks (id, owner_id, title, link, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.ID, bookmark.OwnerID, bookmark.Title, bookmark.Link, bookmark.Description).
		Scan(&bookmark.CreatedAt, &bookmark.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Bookmark, error) {
	query :=
		`SELECT id, owner_id, title, link, description, created_at, updated_at
		 FROM bookmarks
		 WHERE owner_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Bookmark
	for rows.Next() {
		var item models.Bookmark
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Title, &item.Link, &item.Description,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID, id string) (*models.Bookmark, error) {
	query :=
		`SELECT id, owner_id, title, link, description, created_at, updated_at
		 FROM bookmarks
		 WHERE owner_id = $1 AND id = $2
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, id))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Bookmark, error) {
	query :=
		`SELECT id, owner_id, title, link, description, created_at, updated_at
		 FROM bookmarks
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	query :=
		`UPDATE bookmarks
		 SET title = $2, link = $3, description = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.ID, bookmark.Title, bookmark.Link, bookmark.Description).
		Scan(&bookmark.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookmarks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{}
	err := row.Scan(&bookmark.ID, &bookmark.OwnerID, &bookmark.Title, &bookmark.Link,
		&bookmark.Description, &bookmark.CreatedAt, &bookmark.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}
