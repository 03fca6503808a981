// Package legacy exposes the deprecated config-file patch endpoints. The
// responses carry the operator-facing transcript verbatim, including raw
// error text; this path predates the sanitized error surface and its clients
// depend on the exact output.
package legacy

import (
	"errors"
	"log/slog"
	"net/http"

	"dan-papers/internal/handler/http/pathutil"
	"dan-papers/internal/handler/http/respond"
	infralegacy "dan-papers/internal/infra/legacy"
	"dan-papers/internal/observability/logging"
	artUC "dan-papers/internal/usecase/article"
	legacyUC "dan-papers/internal/usecase/legacy"
)

// TokenHeader carries the caller's GitHub personal access token. The legacy
// flow authenticates against GitHub directly, not against the session.
const TokenHeader = "X-GitHub-Token"

// DeleteResponse is the wire shape of a legacy delete run.
type DeleteResponse struct {
	Transcript []string `json:"transcript"`
	Error      string   `json:"error,omitempty"`
}

// DeleteHandler removes a legacy article record by splicing the remote
// config file.
type DeleteHandler struct {
	Articles *artUC.Service
	Svc      *legacyUC.Service
	Logger   *slog.Logger
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	id, err := pathutil.ExtractID(r.URL.Path, "/legacy/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	token := r.Header.Get(TokenHeader)
	if token == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("github token required"))
		return
	}

	target, err := h.Articles.Get(ctx, id)
	if err != nil {
		respond.SafeError(w, statusForLookup(err), err)
		return
	}

	result, err := h.Svc.Delete(ctx, token, target)
	if err != nil {
		logger.Warn("legacy delete failed",
			"article_id", id,
			"error", respond.SanitizeError(err))
		// Raw error text is part of this endpoint's contract.
		respond.JSON(w, statusForDelete(err), DeleteResponse{
			Transcript: result.Transcript,
			Error:      err.Error(),
		})
		return
	}

	logger.Info("legacy article deleted", "article_id", id)
	respond.JSON(w, http.StatusOK, DeleteResponse{Transcript: result.Transcript})
}

func statusForLookup(err error) int {
	if errors.Is(err, artUC.ErrArticleNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func statusForDelete(err error) int {
	var apiErr *infralegacy.APIError
	switch {
	case errors.Is(err, legacyUC.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, legacyUC.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusConflict {
			return http.StatusConflict
		}
		if apiErr.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// Register registers the legacy endpoints with the given mux.
func Register(mux *http.ServeMux, articles *artUC.Service, svc *legacyUC.Service, logger *slog.Logger) {
	mux.Handle("DELETE /legacy/articles/{id}", DeleteHandler{Articles: articles, Svc: svc, Logger: logger})
	mux.Handle("POST   /legacy/articles/{id}", PublishHandler{Articles: articles, Svc: svc, Logger: logger})
}
