package models

import "time"

// Bookmark is a saved link belonging to exactly one user. OwnerID is used
// for authorization lookups only.
type Bookmark struct {
	ID          string
	OwnerID     string
	Title       string
	Link        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
