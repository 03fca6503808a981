// Package content provides HTTP handlers for the AI-assisted composition
// endpoints: structuring raw text, summarizing, and importing files.
package content

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	httpmetrics "dan-papers/internal/handler/http"
	"dan-papers/internal/handler/http/respond"
	"dan-papers/internal/infra/extract"
	"dan-papers/internal/observability/logging"
	contentUC "dan-papers/internal/usecase/content"
)

// maxImportBytes caps uploaded file size. Enforced again by the body limit
// middleware; this bound applies to the file part itself.
const maxImportBytes = 5 << 20

type textRequest struct {
	Text string `json:"text"`
}

// StructureHandler converts raw text into an article draft.
type StructureHandler struct{ Svc *contentUC.Service }

func (h StructureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	// Structure never fails: provider errors degrade to the raw text.
	respond.JSON(w, http.StatusOK, h.Svc.Structure(r.Context(), req.Text))
}

// SummarizeHandler returns a short academic summary of article text.
type SummarizeHandler struct{ Svc *contentUC.Service }

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		Summary string `json:"summary"`
	}{Summary: h.Svc.Summarize(r.Context(), req.Text)})
}

// ImportHandler accepts a multipart file upload, extracts its text, and
// structures it into a draft. Unsupported formats are rejected with 415.
type ImportHandler struct {
	Svc    *contentUC.Service
	Logger *slog.Logger
}

func (h ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("file part is required"))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid file upload"))
		return
	}

	result, err := h.Svc.Import(ctx, header.Filename, data)
	if err != nil {
		httpmetrics.RecordArticleImported(false)
		code := http.StatusInternalServerError
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			code = http.StatusUnsupportedMediaType
		}
		logger.Warn("file import rejected",
			"filename", header.Filename,
			"error", err.Error())
		respond.SafeError(w, code, err)
		return
	}

	httpmetrics.RecordArticleImported(true)
	logger.Info("file imported",
		"filename", header.Filename,
		"bytes", len(data))

	respond.JSON(w, http.StatusOK, result)
}

// Register registers the content endpoints with the given mux.
func Register(mux *http.ServeMux, svc *contentUC.Service, logger *slog.Logger) {
	mux.Handle("POST   /content/structure", StructureHandler{Svc: svc})
	mux.Handle("POST   /content/summarize", SummarizeHandler{Svc: svc})
	mux.Handle("POST   /content/import", ImportHandler{Svc: svc, Logger: logger})
}
