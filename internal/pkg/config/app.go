package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// AppConfig is the validated runtime configuration for the API service.
type AppConfig struct {
	Port            int
	ShutdownTimeout time.Duration

	// Session signing.
	JWTSecret string

	// GitHub OAuth application credentials.
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURI  string

	// External usernames allowed to delete any non-seed article.
	AdminUsernames []string

	// Legacy patcher target file.
	LegacyOwner  string
	LegacyRepo   string
	LegacyPath   string
	LegacyBranch string

	// Rate limiting for auth and AI endpoints.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	Version string
}

// Load reads, validates, and defaults the application configuration.
// Optional knobs fall back with warnings; missing or weak secrets are
// startup errors.
func Load() (*AppConfig, []string, error) {
	var warnings []string

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if err := ValidateJWTSecret(jwtSecret); err != nil {
		return nil, nil, fmt.Errorf("JWT_SECRET rejected: %w", err)
	}

	clientID := os.Getenv("GITHUB_OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("GITHUB_OAUTH_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, nil, fmt.Errorf("GITHUB_OAUTH_CLIENT_ID and GITHUB_OAUTH_CLIENT_SECRET must be set")
	}

	portResult := LoadEnvInt("PORT", 8080, ValidateIntRange(1, 65535))
	warnings = append(warnings, portResult.Warnings...)

	shutdownResult := LoadEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second, ValidatePositiveDuration)
	warnings = append(warnings, shutdownResult.Warnings...)

	rateReqResult := LoadEnvInt("RATE_LIMIT_REQUESTS", 30, ValidateIntRange(1, 10000))
	warnings = append(warnings, rateReqResult.Warnings...)

	rateWindowResult := LoadEnvDuration("RATE_LIMIT_WINDOW", time.Minute, ValidatePositiveDuration)
	warnings = append(warnings, rateWindowResult.Warnings...)

	cfg := &AppConfig{
		Port:              portResult.Value.(int),
		ShutdownTimeout:   shutdownResult.Value.(time.Duration),
		JWTSecret:         jwtSecret,
		OAuthClientID:     clientID,
		OAuthClientSecret: clientSecret,
		OAuthRedirectURI:  LoadEnvString("GITHUB_OAUTH_REDIRECT_URI", "http://localhost:8080/auth/callback"),
		AdminUsernames:    splitList(LoadEnvString("ADMIN_USERNAMES", "somdipto")),
		LegacyOwner:       LoadEnvString("LEGACY_REPO_OWNER", ""),
		LegacyRepo:        LoadEnvString("LEGACY_REPO_NAME", ""),
		LegacyPath:        LoadEnvString("LEGACY_FILE_PATH", "constants.ts"),
		LegacyBranch:      LoadEnvString("LEGACY_BRANCH", "main"),
		RateLimitRequests: rateReqResult.Value.(int),
		RateLimitWindow:   rateWindowResult.Value.(time.Duration),
		Version:           LoadEnvString("APP_VERSION", "dev"),
	}

	return cfg, warnings, nil
}

// LegacyEnabled reports whether the legacy patcher endpoint is configured.
// The legacy surface stays unregistered when the target repo is unset.
func (c *AppConfig) LegacyEnabled() bool {
	return c.LegacyOwner != "" && c.LegacyRepo != ""
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
