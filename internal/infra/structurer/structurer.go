// Package structurer provides AI-powered article structuring and summarization.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns: circuit breaker, retry with backoff, structured logging, and
// Prometheus metrics.
package structurer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StructuredArticle is the result of structuring raw extracted text.
type StructuredArticle struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Tags     []string `json:"tags"`
	Content  string   `json:"content"`
}

// maxInputChars bounds prompt size across providers. Longer inputs are
// truncated with a visible marker.
const maxInputChars = 10000

const summarizePromptPrefix = "Please provide a concise, academic summary (approx. 3-4 sentences) of the following research paper content. Focus on the core hypothesis and conclusion.\n\n"

const structurePromptPrefix = `You are a professional research paper editor. Convert the following raw text extracted from a document into a beautifully structured Markdown blog post.
Identify the title, a 1-sentence subtitle, 3-5 relevant research tags, and the main content.
Format the content using # for main headings, ## for subheadings, and > for blockquotes where appropriate.
Preserve tabular data as Markdown tables using | delimiters, and wrap architecture or pseudocode descriptions in fenced code blocks.
Clean up any extraction artifacts like broken lines or headers/footers.
Respond with a single JSON object with keys "title", "subtitle", "tags" and "content", and nothing else.

RAW TEXT:
`

func truncateInput(text string) string {
	if len(text) <= maxInputChars {
		return text
	}
	return text[:maxInputChars] + "...\n(input truncated)"
}

func buildSummarizePrompt(text string) string {
	return summarizePromptPrefix + truncateInput(text)
}

func buildStructurePrompt(rawText string) string {
	return structurePromptPrefix + truncateInput(rawText)
}

// parseStructured decodes the model's JSON answer. Models occasionally wrap
// the object in a Markdown code fence despite instructions, so fences are
// stripped before decoding.
func parseStructured(raw string) (*StructuredArticle, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var result StructuredArticle
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("decode structured response: %w", err)
	}
	if result.Title == "" || result.Content == "" {
		return nil, fmt.Errorf("structured response missing title or content")
	}
	return &result, nil
}
