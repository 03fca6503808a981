package article

import (
	"net/http"
	"strings"

	"dan-papers/internal/handler/http/pathutil"
	"dan-papers/internal/handler/http/respond"
	"dan-papers/internal/markdown"
	artUC "dan-papers/internal/usecase/article"
)

// RenderedHandler serves an article's content as the parsed block sequence,
// ready for a presentation layer to lay out without reparsing markdown.
type RenderedHandler struct{ Svc *artUC.Service }

// renderedResponse pairs the article ID with its rendered blocks.
type renderedResponse struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Blocks []markdown.Block `json:"blocks"`
}

func (h RenderedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/rendered")
	id, err := pathutil.ExtractID(path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	blocks := markdown.Render(found.Content)
	if blocks == nil {
		blocks = []markdown.Block{}
	}

	respond.JSON(w, http.StatusOK, renderedResponse{
		ID:     found.ID,
		Title:  found.Title,
		Blocks: blocks,
	})
}
