package structurer

import (
	"context"
	"log/slog"
	"os"
)

// Provider is the interface implemented by every AI backend.
type Provider interface {
	StructureArticle(ctx context.Context, rawText string) (*StructuredArticle, error)
	Summarize(ctx context.Context, articleText string) (string, error)
}

// Name reports which backend a provider is, for health reporting.
func Name(p Provider) string {
	switch p.(type) {
	case *Claude:
		return "claude"
	case *OpenAI:
		return "openai"
	default:
		return "noop"
	}
}

// FromEnv selects a provider based on environment configuration.
//
// STRUCTURER_PROVIDER forces a provider ("claude", "openai", "noop"). When
// unset, the first configured API key wins: ANTHROPIC_API_KEY, then
// OPENAI_API_KEY. With no key at all the NoOp provider is used so the server
// still starts in development.
func FromEnv() Provider {
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	switch os.Getenv("STRUCTURER_PROVIDER") {
	case "claude":
		if anthropicKey == "" {
			slog.Warn("STRUCTURER_PROVIDER=claude but ANTHROPIC_API_KEY not set, using noop")
			return NewNoOp()
		}
		return NewClaude(anthropicKey)
	case "openai":
		if openaiKey == "" {
			slog.Warn("STRUCTURER_PROVIDER=openai but OPENAI_API_KEY not set, using noop")
			return NewNoOp()
		}
		return NewOpenAI(openaiKey)
	case "noop":
		return NewNoOp()
	}

	if anthropicKey != "" {
		return NewClaude(anthropicKey)
	}
	if openaiKey != "" {
		return NewOpenAI(openaiKey)
	}

	slog.Warn("no AI API key configured, structuring and summaries run in noop mode")
	return NewNoOp()
}
