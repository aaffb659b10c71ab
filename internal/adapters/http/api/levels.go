package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sameer447/ChefsQuest/internal/app"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// LevelsHandler handles level result submissions.
type LevelsHandler struct {
	engine Engine
}

// NewLevelsHandler creates a new levels handler.
func NewLevelsHandler(engine Engine) *LevelsHandler {
	return &LevelsHandler{engine: engine}
}

// HandlePostResult handles POST /v1/levels/result requests.
func (h *LevelsHandler) HandlePostResult(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_result"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var res model.LevelResult
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	outcome, err := h.engine.ResolveLevel(r.Context(), res)
	switch {
	case err == nil:
		// passthrough
	case errors.Is(err, app.ErrDuplicateResult):
		// Re-submission of an already-applied result acknowledges cleanly.
		writeJSON(w, http.StatusOK, resultResponse{Status: "duplicate", Duplicate: true})
		return
	case errors.Is(err, model.ErrUnknownLevel):
		writeError(w, http.StatusNotFound, "unknown_level", err)
		return
	case errors.Is(err, model.ErrNegativeCounter), errors.Is(err, model.ErrNegativeDuration):
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	case errors.Is(err, app.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_started", err)
		return
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	unlocked := make([]string, 0, len(outcome.NewlyUnlocked))
	for _, def := range outcome.NewlyUnlocked {
		unlocked = append(unlocked, def.ID)
	}
	writeJSON(w, http.StatusOK, resultResponse{
		Status:        "applied",
		Stars:         outcome.Stars,
		Progress:      &outcome.Progress,
		Stats:         &outcome.Stats,
		NewlyUnlocked: unlocked,
		SoundCues:     outcome.SoundCues,
	})
}
