// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for word and character counting
// used by the read-time estimate and the AI providers.
package text

import "strings"

// CountWords counts whitespace-separated words in the given text.
// Consecutive whitespace is treated as a single separator, so blank
// content counts zero words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CountRunes counts the number of Unicode characters (runes) in the given text.
// It correctly handles multi-byte characters by counting runes instead of bytes,
// which keeps summary-length accounting consistent across AI providers.
func CountRunes(s string) int {
	return len([]rune(s))
}
