package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	v1 "github.com/avdex/avdex/internal/api/v1"
	"github.com/avdex/avdex/internal/catalog"
	"github.com/avdex/avdex/internal/config"
	"github.com/avdex/avdex/internal/lookup"
	"github.com/avdex/avdex/internal/search"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	store := catalog.NewStore(db)
	if err := store.Init(); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	// === Services ===
	engine := search.NewEngine(store, logger.With("component", "search"))
	engine.SetLimits(cfg.Search.TextLimit, cfg.Search.LinkLimit)
	hydrator := search.NewHydrator(store)
	session := search.NewSession(engine, hydrator, logger)
	fetcher := search.NewFetcher(store)
	lookups := lookup.NewLoader(store, cfg.Lookup.CacheTTL.Duration, logger.With("component", "lookup"))

	// === HTTP Setup ===
	mux := http.NewServeMux()

	apiV1 := v1.New(store, session, fetcher, lookups, logger, v1.Config{
		AuthSecret: cfg.Auth.Secret,
	})
	apiV1.RegisterRoutes(mux)

	addr := cfg.Addr()
	logger.Info("server starting",
		"addr", addr,
		"database", cfg.Database.Path,
		"auth", cfg.Auth.Secret != "",
		"lookup_ttl", cfg.Lookup.CacheTTL.Duration.String(),
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{Addr: addr, Handler: logRequests(mux, logger)}

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())

	// Graceful HTTP shutdown with 30s timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
