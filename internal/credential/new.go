package credential

import (
	"context"
	"fmt"
	"sync"

	"github.com/yunpil/youtube/internal/logger"
)

type implHolder struct {
	mu      sync.RWMutex
	current Credential
	store   Store
	logger  logger.Logger
}

// New creates a Holder. When store is non-nil the saved credential is read
// back immediately and every Set is written through.
func New(store Store, log logger.Logger) (Holder, error) {
	h := &implHolder{
		store:  store,
		logger: log,
	}
	if store == nil {
		return h, nil
	}

	saved, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load credential: %w", err)
	}
	h.current = saved
	if saved.Configured() {
		log.Info(context.Background(), "Loaded saved API key: %s", saved.Masked())
	}
	return h, nil
}
