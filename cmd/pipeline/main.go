package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yunpil/youtube/internal/app"
	"github.com/yunpil/youtube/internal/config"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/processor"
	"github.com/yunpil/youtube/internal/watcher"
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

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Batch Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	pipeline, err := app.NewPipeline(cfg, log, nil)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}
	if !pipeline.Credentials.IsConfigured() {
		log.Error(ctx, "Batch mode needs gemini.api_key or a saved credential")
		os.Exit(1)
	}

	proc := processor.New(cfg.Paths, pipeline.Orchestrator, pipeline.Credentials, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, watcher.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	})
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received, waiting for running transcripts...")
		cancel()
		err = <-done
	case err = <-done:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Pipeline stopped")
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
