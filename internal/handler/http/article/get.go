package article

import (
	"net/http"

	"dan-papers/internal/handler/http/pathutil"
	"dan-papers/internal/handler/http/respond"
	artUC "dan-papers/internal/usecase/article"
)

// GetHandler serves a single article by ID from either store.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(found))
}
