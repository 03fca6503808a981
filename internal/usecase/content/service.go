// Package content implements the AI-assisted composition use cases:
// structuring raw text into an article draft, summarizing article text, and
// importing uploaded files. AI failures degrade gracefully instead of
// blocking the workflow.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"dan-papers/internal/infra/extract"
	"dan-papers/internal/infra/structurer"
)

// summaryFallback is shown when summary generation fails. The exact wording
// is part of the product surface.
const summaryFallback = "Failed to generate summary. Please try again later."

// Service orchestrates the AI provider and the file extractor.
type Service struct {
	Provider structurer.Provider
}

// NewService creates a content service backed by the given AI provider.
func NewService(provider structurer.Provider) *Service {
	return &Service{Provider: provider}
}

// Structure converts raw text into an article draft. When the provider
// fails, the raw text is returned unchanged under a derived title; the
// caller cannot distinguish a degraded result except by its shape, which is
// deliberate.
func (s *Service) Structure(ctx context.Context, rawText string) *structurer.StructuredArticle {
	result, err := s.Provider.StructureArticle(ctx, rawText)
	if err != nil {
		slog.WarnContext(ctx, "structuring failed, falling back to raw text",
			slog.String("error", err.Error()))
		return &structurer.StructuredArticle{
			Title:   structurer.FirstLineTitle(rawText),
			Content: rawText,
		}
	}
	return result
}

// Summarize returns a short academic summary of the article text, or the
// fixed fallback message when the provider fails.
func (s *Service) Summarize(ctx context.Context, articleText string) string {
	summary, err := s.Provider.Summarize(ctx, articleText)
	if err != nil {
		slog.WarnContext(ctx, "summary generation failed",
			slog.String("error", err.Error()))
		return summaryFallback
	}
	return summary
}

// Import extracts text from an uploaded file and structures it. Extraction
// failures are hard errors (the file is unreadable); structuring failures
// degrade to the raw text like Structure.
func (s *Service) Import(ctx context.Context, filename string, data []byte) (*structurer.StructuredArticle, error) {
	rawText, err := extract.Text(filename, data)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", filename, err)
	}
	return s.Structure(ctx, rawText), nil
}
