package structurer

import (
	"context"
	"strings"
)

// NoOp is a provider used when no AI API key is configured. Structuring
// returns the raw text with a derived title and summaries return a leading
// excerpt, so development setups work without external calls.
type NoOp struct{}

// NewNoOp creates a new NoOp provider.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// StructureArticle returns the raw text unchanged with the first non-empty
// line as the title.
func (n *NoOp) StructureArticle(_ context.Context, rawText string) (*StructuredArticle, error) {
	return &StructuredArticle{
		Title:   FirstLineTitle(rawText),
		Content: rawText,
	}, nil
}

// Summarize returns the first 500 bytes of the text.
func (n *NoOp) Summarize(_ context.Context, articleText string) (string, error) {
	const maxLength = 500
	if len(articleText) <= maxLength {
		return articleText, nil
	}
	return articleText[:maxLength] + "...", nil
}

// FirstLineTitle derives a title from raw text: the first non-empty line,
// clipped to a headline length. Used by the NoOp provider and by the
// structuring fallback path.
func FirstLineTitle(rawText string) string {
	for _, line := range strings.Split(rawText, "\n") {
		trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if trimmed == "" {
			continue
		}
		const maxTitle = 80
		runes := []rune(trimmed)
		if len(runes) > maxTitle {
			return string(runes[:maxTitle]) + "..."
		}
		return trimmed
	}
	return "Untitled Document"
}
