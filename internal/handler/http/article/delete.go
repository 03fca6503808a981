package article

import (
	"net/http"

	"dan-papers/internal/handler/http/auth"
	"dan-papers/internal/handler/http/pathutil"
	"dan-papers/internal/handler/http/respond"
	artUC "dan-papers/internal/usecase/article"
)

// DeleteHandler removes an article. Owner or allow-listed admin.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	caller := auth.CurrentUser(r.Context())
	if err := h.Svc.Remove(r.Context(), caller, id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
