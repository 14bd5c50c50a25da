// Package main is the entry point for the binday API server.
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

	"github.com/pkordes/binday/backend/internal/config"
	"github.com/pkordes/binday/backend/internal/handler"
	"github.com/pkordes/binday/backend/internal/metrics"
	"github.com/pkordes/binday/backend/internal/middleware"
	"github.com/pkordes/binday/backend/internal/service"
	"github.com/pkordes/binday/backend/internal/upstream"
	"github.com/pkordes/binday/backend/internal/web"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
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

	// --- Services ---------------------------------------------------------
	m := metrics.New()

	client := upstream.NewClient(upstream.Options{
		BaseURL:       cfg.Upstream.BaseURL,
		Timeout:       cfg.Upstream.Timeout,
		Authorization: cfg.Upstream.Authorization,
		APIVersion:    cfg.Upstream.APIVersion,
		AppVersion:    cfg.Upstream.AppVersion,
		Platform:      cfg.Upstream.Platform,
		UserAgent:     cfg.Upstream.UserAgent,
	}, logger, m)

	bins := service.NewBins(service.NewCollectionService(client), cfg.CacheTTL, m)
	defer bins.Close()

	slog.Info("services ready",
		"upstream", cfg.Upstream.BaseURL,
		"cache_ttl", cfg.CacheTTL.String(),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics → Recoverer → CORS.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetrics(m))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))

	srvHandler := handler.NewServer(bins, cfg.DefaultUPRN, logger)
	r.Mount("/api", srvHandler.Routes())
	r.Get("/openapi.yaml", handler.OpenAPI)
	r.Handle("/metrics", m.Handler())
	r.Get("/", web.Index)
	r.Handle("/static/*", web.Static())

	// --- HTTP Server ------------------------------------------------------
	// The write timeout has to outlast one upstream call.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Upstream.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
