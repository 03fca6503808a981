package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"article by slug", "/articles/the-case-for-scaling", "/articles/:id"},
		{"article by uuid", "/articles/0b5c9a44-9f6e-4a2f-9a9e-1c1f8c7d2a31", "/articles/:id"},
		{"rendered article", "/articles/abc123/rendered", "/articles/:id/rendered"},
		{"legacy article", "/legacy/articles/old-paper", "/legacy/articles/:id"},
		{"mine is static", "/articles/mine", "/articles/mine"},
		{"article list", "/articles", "/articles"},
		{"health", "/health", "/health"},
		{"query stripped", "/articles/abc?full=1", "/articles/:id"},
		{"trailing slash stripped", "/articles/abc/", "/articles/:id"},
		{"root", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePath(tt.path))
		})
	}
}
