package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yunpil/youtube/internal/app"
	"github.com/yunpil/youtube/internal/config"
	"github.com/yunpil/youtube/internal/httpapi"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.NewZap(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewFromZap(zapLog)

	m := metrics.New()
	pipeline, err := app.NewPipeline(cfg, log, m)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.Dependencies{
		Orchestrator:   pipeline.Orchestrator,
		Credentials:    pipeline.Credentials,
		Logger:         log,
		Zap:            zapLog,
		Metrics:        m,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "HTTP server listening on %s (model: %s)", cfg.Server.Addr, cfg.Gemini.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info(ctx, "Shutdown signal received: %s", sig)
	case err := <-errChan:
		log.Error(ctx, "HTTP server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Graceful shutdown failed: %v", err)
	}
	log.Info(ctx, "Server stopped")
}
