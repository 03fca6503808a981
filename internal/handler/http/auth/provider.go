// Package auth provides the OAuth sign-in flow, session tokens, and the
// identity middleware that attaches the caller to the request context.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dan-papers/internal/usecase/identity"
)

const (
	defaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	defaultTokenURL     = "https://github.com/login/oauth/access_token"
	defaultAPIBaseURL   = "https://api.github.com"
)

// GitHubProvider exchanges OAuth codes and fetches user profiles from GitHub.
type GitHubProvider struct {
	ClientID     string
	ClientSecret string

	authorizeURL string
	tokenURL     string
	apiBaseURL   string
	httpClient   *http.Client
}

// NewGitHubProvider creates a provider pointed at github.com.
func NewGitHubProvider(clientID, clientSecret string) *GitHubProvider {
	return &GitHubProvider{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		apiBaseURL:   defaultAPIBaseURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewGitHubProviderWithBaseURLs creates a provider against custom endpoints.
// Used by tests with httptest servers.
func NewGitHubProviderWithBaseURLs(clientID, clientSecret, authorizeURL, tokenURL, apiBaseURL string) *GitHubProvider {
	p := NewGitHubProvider(clientID, clientSecret)
	p.authorizeURL = authorizeURL
	p.tokenURL = tokenURL
	p.apiBaseURL = apiBaseURL
	return p
}

// AuthorizeURL builds the redirect target that starts the OAuth flow.
func (p *GitHubProvider) AuthorizeURL(state, redirectURI string) string {
	q := url.Values{}
	q.Set("client_id", p.ClientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", "read:user user:email")
	q.Set("state", state)
	return p.authorizeURL + "?" + q.Encode()
}

// Exchange trades an authorization code for an access token.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", p.ClientID)
	form.Set("client_secret", p.ClientSecret)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("exchange code: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("exchange code: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken      string `json:"access_token"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("exchange code: decode response: %w", err)
	}
	if payload.Error != "" {
		return "", fmt.Errorf("exchange code: %s: %s", payload.Error, payload.ErrorDescription)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("exchange code: empty access token")
	}
	return payload.AccessToken, nil
}

// FetchProfile retrieves the authenticated user's profile.
func (p *GitHubProvider) FetchProfile(ctx context.Context, accessToken string) (identity.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBaseURL+"/user", nil)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return identity.Profile{}, fmt.Errorf("fetch profile: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return identity.Profile{}, fmt.Errorf("fetch profile: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return identity.Profile{}, fmt.Errorf("fetch profile: decode response: %w", err)
	}
	if payload.ID == 0 {
		return identity.Profile{}, fmt.Errorf("fetch profile: missing user id")
	}

	return identity.Profile{
		ID:       "github:" + strconv.FormatInt(payload.ID, 10),
		Name:     payload.Name,
		Email:    payload.Email,
		Image:    payload.AvatarURL,
		Username: payload.Login,
	}, nil
}
