package article

import (
	"log/slog"
	"net/http"
	"time"

	"dan-papers/internal/handler/http/respond"
	"dan-papers/internal/observability/logging"
	artUC "dan-papers/internal/usecase/article"
)

// ListHandler serves the public feed: persisted published articles merged
// with the seed bundle, newest first.
type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("failed to list articles", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, fromEntity(a))
	}

	logger.Info("article list served",
		"count", len(dtos),
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, dtos)
}
