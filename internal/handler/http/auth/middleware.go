package auth

import (
	"context"
	"net/http"
	"strings"

	"dan-papers/internal/domain/entity"
)

type ctxKey string

const ctxUser ctxKey = "user"

// SessionCookie is the cookie carrying the session token for browser clients.
const SessionCookie = "session"

// CurrentUser returns the authenticated caller attached to the context,
// or nil for anonymous requests.
func CurrentUser(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(ctxUser).(*entity.User); ok {
		return user
	}
	return nil
}

// WithUser attaches a caller to the context. Exported for handler tests.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, ctxUser, user)
}

// Identity returns middleware that resolves the caller from the Authorization
// header or the session cookie and attaches it to the request context.
//
// Anonymous and invalid-token requests pass through with no caller attached.
// The write use cases decide for themselves whether a caller is required, so
// public reads and authenticated writes share one handler chain.
func Identity(signer *SessionSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					token = c.Value
				}
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := signer.Parse(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, prefix) {
		return ""
	}
	return strings.TrimPrefix(authz, prefix)
}
