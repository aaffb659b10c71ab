package api

import (
	"encoding/json"
	"net/http"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// SettingsHandler reads and writes the user settings record.
type SettingsHandler struct {
	engine Engine
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(engine Engine) *SettingsHandler {
	return &SettingsHandler{engine: engine}
}

// HandleSettings handles GET and PUT /v1/settings requests.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.settings"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.engine.Settings(r.Context()))

	case http.MethodPut:
		var settings model.UserSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.engine.SaveSettings(r.Context(), settings); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, settings)

	default:
		http.NotFound(w, r)
	}
}
