package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yunpil/youtube/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	extensions    map[string]bool
	settleDelay   time.Duration
	maxConcurrent int
	sem           *semaphore
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]bool
}

// Start processes files already waiting in the directory, then watches for
// new ones until ctx is cancelled. It waits for running handlers before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	existing, err := w.pending()
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	if len(existing) > 0 {
		w.logger.Info(ctx, "Found %d transcript(s) waiting in %s", len(existing), w.inputDir)
	}
	for _, path := range existing {
		if err := w.dispatch(ctx, path); err != nil {
			return w.drain(ctx, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.drain(ctx, fmt.Errorf("watcher events channel closed"))
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.isTranscript(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return w.drain(ctx, ctx.Err())
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.drain(ctx, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.drain(ctx, fmt.Errorf("watcher errors channel closed"))
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch runs the handler for path in its own goroutine once a slot is free.
// A path already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		// Renamed away or archived already.
		return nil
	}

	w.mu.Lock()
	if w.inFlight[path] {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = true
	w.mu.Unlock()

	if err := w.sem.acquire(ctx); err != nil {
		w.done(path)
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()
		defer w.done(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) done(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

func (w *implWatcher) drain(ctx context.Context, err error) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return err
}

func (w *implWatcher) pending() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if w.isTranscript(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (w *implWatcher) isTranscript(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}
