package article

import (
	"encoding/json"
	"net/http"

	"dan-papers/internal/handler/http/auth"
	"dan-papers/internal/handler/http/respond"
	artUC "dan-papers/internal/usecase/article"
)

// CreateHandler publishes a new article owned by the caller.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	caller := auth.CurrentUser(r.Context())
	created, err := h.Svc.Create(r.Context(), caller, artUC.CreateInput{
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

	respond.JSON(w, http.StatusCreated, fromEntity(created))
}
