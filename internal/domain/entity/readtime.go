package entity

import "dan-papers/internal/utils/text"

// wordsPerMinute is the assumed reading speed for the read-time estimate.
const wordsPerMinute = 200

// ComputeReadTime returns the estimated reading time in minutes for the given
// content: max(1, ceil(wordCount / 200)). It is recomputed on every content
// write so the stored value never drifts from the content.
func ComputeReadTime(content string) int {
	words := text.CountWords(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
