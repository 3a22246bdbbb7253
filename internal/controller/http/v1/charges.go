package v1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/charge_notifier/internal/domain"
)

type ChargesRepository interface {
	ChargesByFile(ctx context.Context, fileID uuid.UUID, status domain.Status, limit, offset uint64) ([]*domain.Charge, int, error)
	ChargeByID(ctx context.Context, id uuid.UUID) (*domain.Charge, error)
}

type DocumentStorage interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

type ChargesHandler struct {
	log       *slog.Logger
	charges   ChargesRepository
	documents DocumentStorage
	keyFunc   func(debtID uuid.UUID) string
}

func NewChargesHandler(
	log *slog.Logger,
	charges ChargesRepository,
	documents DocumentStorage,
	keyFunc func(debtID uuid.UUID) string,
) *ChargesHandler {
	return &ChargesHandler{
		log:       log,
		charges:   charges,
		documents: documents,
		keyFunc:   keyFunc,
	}
}

type GetChargesByFileResponse struct {
	Charges    []*domain.Charge `json:"charges"`
	Pagination Pagination       `json:"pagination"`
}

func (h *ChargesHandler) GetChargesByFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := uuid.Parse(chi.URLParam(r, "file_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid file id"})
		return
	}

	status := domain.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status"})
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	charges, total, err := h.charges.ChargesByFile(r.Context(), fileID, status, limit, (page-1)*limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, GetChargesByFileResponse{
		Charges:    charges,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *ChargesHandler) GetCharge(w http.ResponseWriter, r *http.Request) {
	charge, ok := h.charge(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, charge)
}

// GetDocument streams the generated notice of a processed charge.
func (h *ChargesHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	charge, ok := h.charge(w, r)
	if !ok {
		return
	}

	if charge.Status != domain.StatusProcessed {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "document is not available for status " + string(charge.Status)})
		return
	}

	doc, err := h.documents.Download(r.Context(), h.keyFunc(charge.DebtID))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	defer doc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+charge.DebtID.String()+`.pdf"`)

	if _, err := io.Copy(w, doc); err != nil {
		h.log.ErrorContext(r.Context(), "failed to stream document", slog.String("err", err.Error()))
	}
}

func (h *ChargesHandler) charge(w http.ResponseWriter, r *http.Request) (*domain.Charge, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "charge_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid charge id"})
		return nil, false
	}

	charge, err := h.charges.ChargeByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, h.log, err)
			return nil, false
		}
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "charge not found"})
		return nil, false
	}

	return charge, true
}
