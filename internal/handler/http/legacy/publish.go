package legacy

import (
	"errors"
	"log/slog"
	"net/http"

	"dan-papers/internal/domain/entity"
	"dan-papers/internal/handler/http/pathutil"
	"dan-papers/internal/handler/http/respond"
	"dan-papers/internal/observability/logging"
	artUC "dan-papers/internal/usecase/article"
	legacyUC "dan-papers/internal/usecase/legacy"
)

// PublishHandler copies a repository article into the remote config file,
// splicing its record in after the list marker. This is migration tooling
// for the bundled article list, not a general publish path.
type PublishHandler struct {
	Articles *artUC.Service
	Svc      *legacyUC.Service
	Logger   *slog.Logger
}

func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	article, err := h.Articles.Get(ctx, id)
	if err != nil {
		respond.SafeError(w, statusForLookup(err), err)
		return
	}

	result, err := h.Svc.Publish(ctx, token, article)
	if err != nil {
		logger.Warn("legacy publish failed",
			"article_id", id,
			"error", respond.SanitizeError(err))
		// Raw error text is part of this endpoint's contract.
		respond.JSON(w, statusForPublish(err), DeleteResponse{
			Transcript: result.Transcript,
			Error:      err.Error(),
		})
		return
	}

	logger.Info("legacy article published", "article_id", id)
	respond.JSON(w, http.StatusOK, DeleteResponse{Transcript: result.Transcript})
}

func statusForPublish(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, legacyUC.ErrRecordExists):
		return http.StatusConflict
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return statusForDelete(err)
	}
}
