package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// DataHandler runs the whole-store data operations.
type DataHandler struct {
	engine         Engine
	importMaxBytes int64
}

// NewDataHandler creates a new data handler.
func NewDataHandler(engine Engine, importMaxBytes int64) *DataHandler {
	return &DataHandler{engine: engine, importMaxBytes: importMaxBytes}
}

// HandleExport handles GET /v1/data/export requests.
func (h *DataHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	bundle, err := h.engine.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

// HandleImport handles POST /v1/data/import requests. The body is a bundle
// as produced by export; absent sections leave current records untouched.
func (h *DataHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.data_import"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.importMaxBytes)
	var bundle model.ExportBundle
	if err := json.NewDecoder(body).Decode(&bundle); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", newKind(op, ErrPayloadSize))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	if err := h.engine.Import(r.Context(), bundle); err != nil {
		if errors.Is(err, model.ErrNegativeCounter) ||
			errors.Is(err, model.ErrNegativeDuration) ||
			errors.Is(err, model.ErrInvalidStars) ||
			errors.Is(err, model.ErrCompletedWithoutStars) ||
			errors.Is(err, model.ErrStreakInversion) {
			writeError(w, http.StatusBadRequest, "invalid_bundle", wrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// HandleReset handles POST /v1/data/reset requests.
func (h *DataHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.engine.ClearAll(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
