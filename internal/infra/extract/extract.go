// Package extract turns uploaded files into raw text for the AI structurer.
// Plain text and Markdown pass through unchanged. Binary document formats are
// rejected: the import surface accepts them on paper but no parser is wired,
// so the caller gets a typed error it can map to a 415.
package extract

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedFormat marks a file format the importer cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// Text returns the raw text of the named file contents.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(path.Ext(filename))

	switch {
	case textExtensions[ext]:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrUnsupportedFormat, ext)
		}
		return string(data), nil
	case ext == ".pdf" || ext == ".docx" || ext == ".doc":
		return "", fmt.Errorf("%w: %s extraction is not available", ErrUnsupportedFormat, ext)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether the named file can be imported.
func Supported(filename string) bool {
	return textExtensions[strings.ToLower(path.Ext(filename))]
}
