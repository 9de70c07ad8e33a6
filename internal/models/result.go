package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyScript = errors.New("generation result requires a non-empty script")

// GenerationResult pairs a generated script with the analysis it was built from.
type GenerationResult struct {
	ID        string        `json:"id"`
	Topic     string        `json:"topic"`
	Analysis  StyleAnalysis `json:"analysis"`
	Script    string        `json:"newScript"`
	CreatedAt time.Time     `json:"createdAt"`
}

// NewGenerationResult is the only way a result gets built; an empty script is
// never wrapped into a partial result.
func NewGenerationResult(topic string, analysis StyleAnalysis, script string) (*GenerationResult, error) {
	if script == "" {
		return nil, ErrEmptyScript
	}
	return &GenerationResult{
		ID:        uuid.NewString(),
		Topic:     topic,
		Analysis:  analysis,
		Script:    script,
		CreatedAt: time.Now().UTC(),
	}, nil
}
