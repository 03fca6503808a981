package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// staticPaths lists article subpaths that look like IDs but are fixed routes.
// They must never be collapsed into the :id template.
var staticPaths = map[string]struct{}{
	"/articles/mine": {},
}

// pathPatterns defines the list of patterns for dynamic routes.
// Article IDs are opaque slugs or UUIDs, so the ID segment matches any
// single non-empty path segment rather than digits only.
// Pre-compiled at initialization for optimal performance.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/[^/]+/rendered$`), Template: "/articles/:id/rendered"},
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/legacy/articles/[^/]+$`), Template: "/legacy/articles/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/the-case-for-scaling) to template
// format (e.g., /articles/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/articles/the-case-for-scaling")  // "/articles/:id"
//	NormalizePath("/articles/abc123/rendered")       // "/articles/:id/rendered"
//	NormalizePath("/articles/mine")                  // "/articles/mine" (unchanged)
//	NormalizePath("/health")                         // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/abc?full=1")            // "/articles/:id"
//	NormalizePath("/articles/abc/")                  // "/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	// Try to match against known patterns
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	return path
}
