package v1

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
	"github.com/kurochkinivan/charge_notifier/internal/ingestion"
)

type Ingester interface {
	Ingest(ctx context.Context, kind string, upload ingestion.Upload) (*domain.IngestReport, error)
}

type FilesRepository interface {
	Files(ctx context.Context, limit, offset uint64) ([]*domain.File, int, error)
	FileByID(ctx context.Context, id uuid.UUID) (*domain.File, error)
}

type FilesHandler struct {
	log           *slog.Logger
	ingester      Ingester
	files         FilesRepository
	maxUploadSize int64
}

func NewFilesHandler(log *slog.Logger, ingester Ingester, files FilesRepository, maxUploadSize int64) *FilesHandler {
	return &FilesHandler{
		log:           log,
		ingester:      ingester,
		files:         files,
		maxUploadSize: maxUploadSize,
	}
}

type GetFilesResponse struct {
	Files      []*domain.File `json:"files"`
	Pagination Pagination     `json:"pagination"`
}

// Upload ingests the multipart field "file". The type is taken from the form field
// "type" and falls back to the file extension.
func (h *FilesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadSize {
		writeError(w, r, h.log, &http.MaxBytesError{Limit: h.maxUploadSize})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			writeError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid form data: %v", err)})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("file required: %v", err)})
		return
	}
	defer file.Close()

	kind := strings.TrimSpace(r.FormValue("type"))
	if kind == "" {
		kind = ingestion.KindFromFilename(header.Filename)
	}

	report, err := h.ingester.Ingest(r.Context(), kind, ingestion.Upload{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *FilesHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	files, total, err := h.files.Files(r.Context(), limit, (page-1)*limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, GetFilesResponse{
		Files:      files,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *FilesHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "file_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid file id"})
		return
	}

	file, err := h.files.FileByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}
