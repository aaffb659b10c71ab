package api

import (
	"net/http"
)

// StateHandler serves read-only record state.
type StateHandler struct {
	engine Engine
}

// NewStateHandler creates a new state handler.
func NewStateHandler(engine Engine) *StateHandler {
	return &StateHandler{engine: engine}
}

// HandleGetProgress handles GET /v1/progress requests.
func (h *StateHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.Progress(r.Context()))
}

// HandleGetStats handles GET /v1/stats requests.
func (h *StateHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.Stats(r.Context()))
}

// HandleGetAchievements handles GET /v1/achievements requests.
func (h *StateHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.Achievements(r.Context()))
}

// HandleGetSession handles GET /v1/session requests.
func (h *StateHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.Session(r.Context()))
}
