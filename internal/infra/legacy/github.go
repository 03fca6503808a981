// Package legacy talks to the GitHub contents API for the deprecated
// config-file patcher. Deletion through this path edits a source file in a
// remote repository instead of a database row; it survives only for the
// bundled legacy articles and is scheduled for removal with them.
package legacy

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Config identifies the repository file the patcher edits.
type Config struct {
	Owner  string
	Repo   string
	Path   string
	Branch string
	Token  string
}

// File is the fetched state of the configured file. Sha guards the
// subsequent update against concurrent edits.
type File struct {
	Content string
	Sha     string
}

// User is the token owner's GitHub identity.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// APIError is a non-2xx response from the GitHub API. Its message is shown
// to the operator verbatim, matching the patcher's terminal-transcript UX.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api: HTTP %d: %s", e.StatusCode, e.Message)
}

// Client is a minimal GitHub contents API client. All calls share one rate
// limiter so a burst of patcher runs cannot exhaust the token's quota.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a GitHub client against the public API.
func NewClient() *Client {
	return &Client{
		baseURL:    "https://api.github.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// Secondary rate limits trip well below the documented 5000/h,
		// so keep writes to ~1/s with a small burst.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint. Used by
// tests and GitHub Enterprise installs.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// GetUser returns the identity behind the given token.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	body, err := c.do(ctx, http.MethodGet, "/user", token, nil)
	if err != nil {
		return nil, fmt.Errorf("GetUser: %w", err)
	}
	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("GetUser: decode: %w", err)
	}
	return &user, nil
}

// FetchFileContent retrieves the configured file's decoded content and sha.
func (c *Client) FetchFileContent(ctx context.Context, cfg Config) (*File, error) {
	path := fmt.Sprintf("/repos/%s/%s/contents/%s?ref=%s",
		cfg.Owner, cfg.Repo, cfg.Path, branchOrMain(cfg))

	body, err := c.do(ctx, http.MethodGet, path, cfg.Token, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchFileContent: %w", err)
	}

	var payload struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
		Sha      string `json:"sha"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("FetchFileContent: decode: %w", err)
	}
	if payload.Encoding != "base64" {
		return nil, fmt.Errorf("FetchFileContent: unexpected encoding %q", payload.Encoding)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("FetchFileContent: base64: %w", err)
	}

	return &File{Content: string(decoded), Sha: payload.Sha}, nil
}

// UpdateFileContent replaces the configured file with newContent. The sha
// from the preceding fetch must be supplied; GitHub rejects the write with a
// 409 when the file changed in between, and that error is propagated as-is.
func (c *Client) UpdateFileContent(ctx context.Context, cfg Config, newContent, sha, commitMessage string) error {
	path := fmt.Sprintf("/repos/%s/%s/contents/%s", cfg.Owner, cfg.Repo, cfg.Path)

	payload := map[string]string{
		"message": commitMessage,
		"content": base64.StdEncoding.EncodeToString([]byte(newContent)),
		"sha":     sha,
		"branch":  branchOrMain(cfg),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("UpdateFileContent: encode: %w", err)
	}

	if _, err := c.do(ctx, http.MethodPut, path, cfg.Token, body); err != nil {
		return fmt.Errorf("UpdateFileContent: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, err
	}

	slog.Debug("github api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiErrorMessage(respBody),
		}
	}
	return respBody, nil
}

func apiErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

func branchOrMain(cfg Config) string {
	if cfg.Branch == "" {
		return "main"
	}
	return cfg.Branch
}
