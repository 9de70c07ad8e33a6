package watcher

import "context"

// Watcher monitors a directory and hands each new transcript file to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one file. Errors are logged, not fatal.
type EventHandler func(ctx context.Context, filePath string) error
