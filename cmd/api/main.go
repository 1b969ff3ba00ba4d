// Package main is the entry point for the TrackPad API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trackpad/internal/config"
	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/handler"
	"github.com/pkordes/trackpad/internal/middleware"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/repo"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load(".env")
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Preferences ------------------------------------------------------
	prefsFile := repo.NewPrefsFile(cfg.PrefsPath)
	prefs, err := prefsFile.Load()
	prefsLoaded := err == nil
	if !prefsLoaded {
		slog.Warn("preferences unreadable, using defaults", "path", cfg.PrefsPath, "error", err)
	}

	// --- Storage ----------------------------------------------------------
	// DATABASE_URL selects Postgres; without it the lists live in the JSON
	// files named by the preferences.
	var stores repo.Stores
	if cfg.DatabaseURL != "" {
		stores, err = repo.OpenPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		slog.Info("database connection established")
	} else {
		stores = repo.OpenFiles(prefs)
		slog.Info("using file storage",
			"attractions", prefs.AttractionListPath,
			"itineraries", prefs.ItineraryListPath,
		)
	}
	defer stores.Close()

	// --- Model ------------------------------------------------------------
	m := loadModel(ctx, stores, prefs, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(m, stores.Attractions, stores.Itineraries, logger)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// No WriteTimeout: websocket streams stay open for the life of the client.
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	// Every change is saved as it happens; Flush only retries saves that
	// failed, so data that could not be loaded is not overwritten.
	if err := srv.Flush(shutdownCtx); err != nil {
		slog.Error("final save failed", "error", err)
	}
	if prefsLoaded {
		if err := prefsFile.Save(m.Prefs()); err != nil {
			slog.Error("saving preferences failed", "path", cfg.PrefsPath, "error", err)
		}
	}
	slog.Info("server stopped")
}

// loadModel builds the model from the stored snapshots. Unreadable or
// inconsistent data is logged and replaced with empty lists.
func loadModel(ctx context.Context, stores repo.Stores, prefs domain.UserPrefs, log *slog.Logger) *model.Model {
	as, its, err := stores.Load(ctx)
	if err != nil {
		log.Warn("stored data unreadable, starting with empty lists", "error", err)
		return emptyModel(prefs, log)
	}
	m, err := model.New(as, its, prefs, log)
	if err != nil {
		log.Warn("stored data inconsistent, starting with empty lists", "error", err)
		return emptyModel(prefs, log)
	}
	log.Info("data loaded", "attractions", len(as), "itineraries", len(its))
	return m
}

func emptyModel(prefs domain.UserPrefs, log *slog.Logger) *model.Model {
	m, _ := model.New(nil, nil, prefs, log)
	return m
}
