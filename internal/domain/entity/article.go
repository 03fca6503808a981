// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// User, along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a published research paper in the system.
// Seed articles are bundled at build time and carry no AuthorID; they share the
// identifier namespace with persisted articles but are immutable through the
// normal write path.
type Article struct {
	ID          string
	Title       string
	Subtitle    string
	AuthorID    string // empty for seed articles
	AuthorName  string
	AuthorImage string
	Date        string // display string, e.g. "Aug 31, 2026"
	ReadTime    int    // minutes
	Tags        []string
	Image       string // cover image URL, optional
	Content     string // Markdown-subset text blob
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsSeed reports whether the article is a build-time seed record.
// Seed articles have no owner and are rejected by the write path.
func (a *Article) IsSeed() bool {
	return a.AuthorID == ""
}

// OwnedBy reports whether the given identity owns the article.
func (a *Article) OwnedBy(userID string) bool {
	return a.AuthorID != "" && a.AuthorID == userID
}
