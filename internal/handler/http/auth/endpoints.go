package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"dan-papers/internal/handler/http/respond"
	"dan-papers/internal/observability/logging"
	identUC "dan-papers/internal/usecase/identity"
)

// stateCookie holds the CSRF state between the redirect and the callback.
const stateCookie = "oauth_state"

// IdentityDTO is the wire shape of the current identity.
type IdentityDTO struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Image    string `json:"image,omitempty"`
	Username string `json:"username,omitempty"`
}

// SignInHandler starts the OAuth flow by redirecting to the provider's
// authorize page with a fresh state value.
type SignInHandler struct {
	Provider    *GitHubProvider
	RedirectURI string
}

func (h SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.Provider.AuthorizeURL(state, h.RedirectURI), http.StatusFound)
}

// CallbackHandler completes the OAuth flow: it verifies the state, exchanges
// the code, fetches the provider profile, upserts the local user, and issues
// a session token as both a cookie and a JSON response body.
type CallbackHandler struct {
	Provider *GitHubProvider
	Signer   *SessionSigner
	Svc      *identUC.Service
	Logger   *slog.Logger
}

func (h CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || state == "" || cookie.Value != state {
		respond.SafeError(w, http.StatusBadRequest, errors.New("state mismatch"))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("missing code"))
		return
	}

	accessToken, err := h.Provider.Exchange(ctx, code)
	if err != nil {
		logger.Warn("oauth code exchange failed", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusBadGateway, errors.New("sign in failed"))
		return
	}

	profile, err := h.Provider.FetchProfile(ctx, accessToken)
	if err != nil {
		logger.Warn("oauth profile fetch failed", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusBadGateway, errors.New("sign in failed"))
		return
	}

	user, err := h.Svc.SignIn(ctx, profile)
	if err != nil {
		logger.Error("sign in upsert failed", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	session, err := h.Signer.Issue(user)
	if err != nil {
		logger.Error("session token issue failed", slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	// Clear the one-shot state cookie.
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/auth", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("sign in completed",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))

	respond.JSON(w, http.StatusOK, struct {
		Token string      `json:"token"`
		User  IdentityDTO `json:"user"`
	}{
		Token: session,
		User: IdentityDTO{
			UserID:   user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Image:    user.Image,
			Username: user.Username,
		},
	})
}

// SignOutHandler expires the session cookie. Tokens held by API clients
// simply age out; there is no server-side session store to invalidate.
type SignOutHandler struct{}

func (SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler returns the current identity, or JSON null for anonymous callers.
type MeHandler struct{}

func (MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	if user == nil {
		// Anonymous is not an error: the identity is JSON null.
		respond.JSON(w, http.StatusOK, json.RawMessage("null"))
		return
	}
	respond.JSON(w, http.StatusOK, IdentityDTO{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Image:    user.Image,
		Username: user.Username,
	})
}

// Register registers the auth endpoints with the given mux.
func Register(mux *http.ServeMux, provider *GitHubProvider, signer *SessionSigner, svc *identUC.Service, redirectURI string, logger *slog.Logger) {
	mux.Handle("GET    /auth/signin", SignInHandler{Provider: provider, RedirectURI: redirectURI})
	mux.Handle("GET    /auth/callback", CallbackHandler{Provider: provider, Signer: signer, Svc: svc, Logger: logger})
	mux.Handle("POST   /auth/signout", SignOutHandler{})
	mux.Handle("GET    /auth/me", MeHandler{})
}
