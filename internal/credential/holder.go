package credential

import (
	"context"
	"fmt"
	"strings"
)

func (h *implHolder) Get() Credential {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Set replaces the credential. Format is not checked here; callers that take
// user input validate first.
func (h *implHolder) Set(value string) error {
	c := Credential(strings.TrimSpace(value))

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		if err := h.store.Save(c); err != nil {
			return fmt.Errorf("save credential: %w", err)
		}
	}
	h.current = c
	h.logger.Info(context.Background(), "API key updated: %s", c.Masked())
	return nil
}

func (h *implHolder) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		if err := h.store.Clear(); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
	}
	h.current = ""
	h.logger.Info(context.Background(), "API key cleared")
	return nil
}

func (h *implHolder) IsConfigured() bool {
	return h.Get().Configured()
}
