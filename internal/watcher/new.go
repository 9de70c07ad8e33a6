package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yunpil/youtube/internal/logger"
)

// DefaultExtensions are the transcript formats picked up when none are configured.
var DefaultExtensions = []string{".txt", ".srt", ".vtt", ".md"}

type Options struct {
	Extensions    []string
	MaxConcurrent int
	// SettleDelay gives writers time to finish before a new file is read.
	SettleDelay time.Duration
}

// New creates a Watcher on inputDir with bounded concurrency.
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 500 * time.Millisecond
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = true
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       fsw,
		extensions:    exts,
		settleDelay:   opts.SettleDelay,
		maxConcurrent: opts.MaxConcurrent,
		sem:           newSemaphore(opts.MaxConcurrent),
		inFlight:      make(map[string]bool),
	}, nil
}
