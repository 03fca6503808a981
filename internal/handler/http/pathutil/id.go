// Package pathutil extracts identifiers from URL paths.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a string article ID from a URL path. Article IDs are
// opaque slugs or UUIDs; the only structural requirement is that the
// remainder is a single non-empty path segment.
//
// Example:
//
//	id, err := ExtractID("/articles/the-case-for-scaling", "/articles/")
//	// Returns: "the-case-for-scaling", nil
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || id == path || strings.Contains(id, "/") {
		return "", ErrInvalidID
	}
	return id, nil
}
