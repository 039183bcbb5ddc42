package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest with the
// salt embedded; it must never be serialized into API responses.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
