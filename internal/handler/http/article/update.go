package article

import (
	"encoding/json"
	"net/http"

	"dan-papers/internal/handler/http/auth"
	"dan-papers/internal/handler/http/pathutil"
	"dan-papers/internal/handler/http/respond"
	artUC "dan-papers/internal/usecase/article"
)

// UpdateHandler edits an article's content fields. Owner only.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	caller := auth.CurrentUser(r.Context())
	updated, err := h.Svc.Update(r.Context(), caller, artUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
		Tags:     req.Tags,
		Image:    req.Image,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(updated))
}
