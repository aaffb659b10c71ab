package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Sameer447/ChefsQuest/internal/adapters/http/api"
	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/internal/app"
	"github.com/Sameer447/ChefsQuest/internal/config"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Disable default Go metrics collection; the engine registers its own
	// metrics on a custom registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	kv, err := storage.NewSQLite(ctx, cfg.DataPath)
	if err != nil {
		log.Error(ctx, "failed to open record store",
			logger.String("data_path", cfg.DataPath), logger.Error(err))
		return
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error(ctx, "closing record store failed", logger.Error(err))
		}
	}()

	svc, err := app.New(
		app.WithKV(kv),
		app.WithLogger(log),
		app.WithQueueSize(cfg.WriteQueueSize),
		app.WithDedupeSize(cfg.DedupeSize),
	)
	if err != nil {
		log.Error(ctx, "failed to construct engine", logger.Error(err))
		return
	}

	state, err := svc.Start(ctx)
	if err != nil {
		log.Error(ctx, "failed to start engine", logger.Error(err))
		return
	}
	log.Info(ctx, "engine ready",
		logger.String("session_id", state.Session.SessionID),
		logger.Int("total_stars", state.Stats.TotalStars),
		logger.Int("current_streak", state.Stats.CurrentStreak),
	)
	defer func() {
		if err := svc.Stop(context.Background()); err != nil {
			log.Error(ctx, "stopping engine failed", logger.Error(err))
		}
	}()

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, cfg.ImportMaxBytes)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
