package article

import (
	"net/http"

	"dan-papers/internal/handler/http/auth"
	"dan-papers/internal/handler/http/respond"
	artUC "dan-papers/internal/usecase/article"
)

// ByAuthorHandler serves the caller's own articles, drafts included.
type ByAuthorHandler struct{ Svc *artUC.Service }

func (h ByAuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.CurrentUser(r.Context())

	articles, err := h.Svc.ListByAuthor(r.Context(), caller)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, fromEntity(a))
	}
	respond.JSON(w, http.StatusOK, dtos)
}
