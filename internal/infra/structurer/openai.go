package structurer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"dan-papers/internal/resilience/circuitbreaker"
	"dan-papers/internal/resilience/retry"
	"dan-papers/internal/utils/text"
)

// OpenAIConfig holds configuration parameters for the OpenAI provider.
type OpenAIConfig struct {
	// Model is the OpenAI API model identifier.
	Model string

	// Timeout is the maximum duration for a single API call.
	Timeout time.Duration
}

// Validate checks the configuration and returns an error if invalid.
func (c *OpenAIConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// DefaultOpenAIConfig returns the default OpenAI provider configuration.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:   openai.GPT4oMini,
		Timeout: 60 * time.Second,
	}
}

// OpenAI structures and summarizes article text using OpenAI's chat API.
// Structuring uses JSON response mode so the answer is always a JSON object.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          OpenAIConfig
	metricsRecorder CallMetricsRecorder
}

// NewOpenAI creates a new OpenAI provider with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	config := DefaultOpenAIConfig()

	slog.Info("Initialized OpenAI structurer",
		slog.String("model", config.Model))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusCallMetrics(),
	}
}

// StructureArticle converts raw extracted text into a structured article.
func (o *OpenAI) StructureArticle(ctx context.Context, rawText string) (*StructuredArticle, error) {
	raw, err := o.complete(ctx, "structure", buildStructurePrompt(rawText), true)
	if err != nil {
		return nil, err
	}
	return parseStructured(raw)
}

// Summarize generates a 3-4 sentence academic summary of the given text.
func (o *OpenAI) Summarize(ctx context.Context, articleText string) (string, error) {
	return o.complete(ctx, "summarize", buildSummarizePrompt(articleText), false)
}

func (o *OpenAI) complete(ctx context.Context, operation, prompt string, jsonMode bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doComplete(ctx, operation, prompt, jsonMode)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		o.metricsRecorder.RecordFailure(operation)
		return "", fmt.Errorf("openai %s failed after retries: %w", operation, retryErr)
	}

	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doComplete(ctx context.Context, operation, prompt string, jsonMode bool) (string, error) {
	slog.InfoContext(ctx, "Starting openai call",
		slog.String("operation", operation),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	req := openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "OpenAI call failed",
			slog.String("operation", operation),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	answer := resp.Choices[0].Message.Content

	slog.InfoContext(ctx, "OpenAI call completed",
		slog.String("operation", operation),
		slog.Int("response_length", text.CountRunes(answer)),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordDuration(operation, duration)

	return answer, nil
}
