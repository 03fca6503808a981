package article

import (
	"log/slog"
	"net/http"

	artUC "dan-papers/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Reads are public; the write handlers rely on the identity middleware having
// attached the caller, and the use case enforces authentication itself.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /articles/mine", ByAuthorHandler{Svc: svc})
	mux.Handle("GET    /articles/{id}", GetHandler{Svc: svc})
	mux.Handle("GET    /articles/{id}/rendered", RenderedHandler{Svc: svc})

	mux.Handle("POST   /articles", CreateHandler{Svc: svc})
	mux.Handle("PUT    /articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{Svc: svc})
}
