package article

import "errors"

var (
	// ErrArticleNotFound is returned when no article exists with the given ID.
	ErrArticleNotFound = errors.New("article not found")

	// ErrUnauthenticated is returned when an operation requires a signed-in
	// caller and none is present.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the caller is authenticated but not
	// allowed to perform the operation on this article.
	ErrForbidden = errors.New("operation not allowed")
)
