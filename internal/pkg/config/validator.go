package config

import (
	"fmt"
	"strings"
	"time"
)

// minJWTSecretLength is the minimum byte length accepted for the HS256
// session secret. Anything shorter is brute-forceable offline.
const minJWTSecretLength = 32

// weakSecretFragments are substrings that mark a secret as guessable even
// when it clears the length bar.
var weakSecretFragments = []string{
	"secret",
	"password",
	"changeme",
	"default",
	"example",
	"test",
}

// ValidateJWTSecret checks that a session secret is long enough and not an
// obvious placeholder.
func ValidateJWTSecret(secret string) error {
	if len(secret) < minJWTSecretLength {
		return fmt.Errorf("secret must be at least %d characters, got %d", minJWTSecretLength, len(secret))
	}

	lower := strings.ToLower(secret)
	for _, weak := range weakSecretFragments {
		if strings.Contains(lower, weak) {
			return fmt.Errorf("secret contains weak fragment %q", weak)
		}
	}

	// A single repeated character passes the length check but has no entropy.
	if strings.Count(secret, string(secret[0])) == len(secret) {
		return fmt.Errorf("secret is a single repeated character")
	}

	return nil
}

// ValidateIntRange returns a validator that accepts values in [min, max].
func ValidateIntRange(min, max int) func(int) error {
	return func(v int) error {
		if v < min || v > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	}
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}
