package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateImageURL validates a cover image URL. The image is optional, so an
// empty string is accepted. A supplied URL must be a well-formed absolute URL
// with an http or https scheme and a host.
// Returns an error wrapping ErrInvalidImageURL otherwise.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}

	if len(rawURL) > maxURLLength {
		return fmt.Errorf("%w: url must not exceed %d characters", ErrInvalidImageURL, maxURLLength)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidImageURL, rawURL)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q is not supported", ErrInvalidImageURL, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%w: url must have a valid host", ErrInvalidImageURL)
	}

	return nil
}
