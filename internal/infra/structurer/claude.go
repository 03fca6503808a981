package structurer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"dan-papers/internal/resilience/circuitbreaker"
	"dan-papers/internal/resilience/retry"
	"dan-papers/internal/utils/text"
)

// ClaudeConfig holds configuration parameters for the Claude provider.
type ClaudeConfig struct {
	// Model is the Claude API model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single API call.
	Timeout time.Duration
}

// DefaultClaudeConfig returns the default Claude provider configuration.
func DefaultClaudeConfig() ClaudeConfig {
	return ClaudeConfig{
		Model:     string(anthropic.ModelClaudeSonnet4_5_20250929),
		MaxTokens: 4096,
		Timeout:   60 * time.Second,
	}
}

// Claude structures and summarizes article text using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          ClaudeConfig
	metricsRecorder CallMetricsRecorder
}

// NewClaude creates a new Claude provider with the given API key.
func NewClaude(apiKey string) *Claude {
	config := DefaultClaudeConfig()

	slog.Info("Initialized Claude structurer",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusCallMetrics(),
	}
}

// StructureArticle converts raw extracted text into a structured article.
func (c *Claude) StructureArticle(ctx context.Context, rawText string) (*StructuredArticle, error) {
	raw, err := c.complete(ctx, "structure", buildStructurePrompt(rawText))
	if err != nil {
		return nil, err
	}
	return parseStructured(raw)
}

// Summarize generates a 3-4 sentence academic summary of the given text.
func (c *Claude) Summarize(ctx context.Context, articleText string) (string, error) {
	return c.complete(ctx, "summarize", buildSummarizePrompt(articleText))
}

// complete runs one prompt through retry and circuit breaker and returns the
// model's text answer.
func (c *Claude) complete(ctx context.Context, operation, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doComplete(ctx, operation, prompt)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		c.metricsRecorder.RecordFailure(operation)
		return "", fmt.Errorf("claude %s failed after retries: %w", operation, retryErr)
	}

	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (c *Claude) doComplete(ctx context.Context, operation, prompt string) (string, error) {
	requestID := uuid.New().String()

	slog.InfoContext(ctx, "Starting claude call",
		slog.String("request_id", requestID),
		slog.String("operation", operation),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Claude call failed",
			slog.String("request_id", requestID),
			slog.String("operation", operation),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	slog.InfoContext(ctx, "Claude call completed",
		slog.String("request_id", requestID),
		slog.String("operation", operation),
		slog.Int("response_length", text.CountRunes(textBlock.Text)),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordDuration(operation, duration)

	return textBlock.Text, nil
}
