package entity

import "time"

// User represents an authenticated identity provisioned by the OAuth sign-in
// flow. It is created or updated on sign-in and read-only everywhere else.
type User struct {
	ID        string
	Name      string
	Email     string // optional
	Image     string // avatar URL, optional
	Username  string // external provider login, optional
	CreatedAt time.Time
	UpdatedAt time.Time
}
