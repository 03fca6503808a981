package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dan-papers/internal/domain/entity"
)

// SessionTTL is how long an issued session token remains valid.
const SessionTTL = 24 * time.Hour

// SessionSigner issues and validates HS256 session tokens carrying the
// caller's identity claims.
type SessionSigner struct {
	secret []byte

	// now is the clock, injectable for tests.
	now func() time.Time
}

// NewSessionSigner creates a signer with the given HMAC secret.
// Secret strength is validated at startup by the config loader.
func NewSessionSigner(secret string) *SessionSigner {
	return &SessionSigner{secret: []byte(secret), now: time.Now}
}

// Issue signs a session token for the given user.
func (s *SessionSigner) Issue(user *entity.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"image":    user.Image,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(SessionTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and reconstructs the caller's identity.
func (s *SessionSigner) Parse(tokenString string) (*entity.User, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("invalid sub claim")
	}

	user := &entity.User{ID: sub}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if image, ok := claims["image"].(string); ok {
		user.Image = image
	}
	if username, ok := claims["username"].(string); ok {
		user.Username = username
	}
	return user, nil
}
