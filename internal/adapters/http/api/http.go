// Package api declares HTTP contracts and route registration helpers.
//
// The surface is a thin operational layer over the engine: submit level
// results, read record state, and run the data operations. It is not a
// sync protocol.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Sameer447/ChefsQuest/internal/app"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// Engine bundles the service operations the handlers need. Using an
// interface keeps the handler layer loosely coupled to the app package.
type Engine interface {
	ResolveLevel(ctx context.Context, res model.LevelResult) (*app.ResolveOutcome, error)
	Progress(ctx context.Context) map[string]model.LevelProgress
	Stats(ctx context.Context) model.GlobalStats
	Achievements(ctx context.Context) map[string]model.AchievementState
	Session(ctx context.Context) model.SessionRecord
	Settings(ctx context.Context) model.UserSettings
	SaveSettings(ctx context.Context, settings model.UserSettings) error
	Export(ctx context.Context) (model.ExportBundle, error)
	Import(ctx context.Context, bundle model.ExportBundle) error
	ClearAll(ctx context.Context) error
}

// Server wires HTTP routes for the engine API.
type Server struct {
	healthHandler   *HealthHandler
	levelsHandler   *LevelsHandler
	stateHandler    *StateHandler
	settingsHandler *SettingsHandler
	dataHandler     *DataHandler
}

// NewServer creates an API server with all handlers.
func NewServer(engine Engine, importMaxBytes int64) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		levelsHandler:   NewLevelsHandler(engine),
		stateHandler:    NewStateHandler(engine),
		settingsHandler: NewSettingsHandler(engine),
		dataHandler:     NewDataHandler(engine, importMaxBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/v1/levels/result", MetricsMiddleware(s.levelsHandler.HandlePostResult, "levels_result"))
	mux.HandleFunc("/v1/progress", MetricsMiddleware(s.stateHandler.HandleGetProgress, "progress"))
	mux.HandleFunc("/v1/stats", MetricsMiddleware(s.stateHandler.HandleGetStats, "stats"))
	mux.HandleFunc("/v1/achievements", MetricsMiddleware(s.stateHandler.HandleGetAchievements, "achievements"))
	mux.HandleFunc("/v1/session", MetricsMiddleware(s.stateHandler.HandleGetSession, "session"))
	mux.HandleFunc("/v1/settings", MetricsMiddleware(s.settingsHandler.HandleSettings, "settings"))
	mux.HandleFunc("/v1/data/export", MetricsMiddleware(s.dataHandler.HandleExport, "data_export"))
	mux.HandleFunc("/v1/data/import", MetricsMiddleware(s.dataHandler.HandleImport, "data_import"))
	mux.HandleFunc("/v1/data/reset", MetricsMiddleware(s.dataHandler.HandleReset, "data_reset"))
}

// resultResponse acknowledges a submitted level result.
type resultResponse struct {
	Status        string               `json:"status"`
	Duplicate     bool                 `json:"duplicate"`
	Stars         int                  `json:"stars,omitempty"`
	Progress      *model.LevelProgress `json:"progress,omitempty"`
	Stats         *model.GlobalStats   `json:"stats,omitempty"`
	NewlyUnlocked []string             `json:"newlyUnlocked,omitempty"`
	SoundCues     []string             `json:"soundCues,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
