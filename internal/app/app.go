// Package app wires the pipeline components from configuration. Both
// binaries share it.
package app

import (
	"context"
	"fmt"

	"github.com/yunpil/youtube/internal/analyzer"
	"github.com/yunpil/youtube/internal/config"
	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
	"github.com/yunpil/youtube/internal/orchestrator"
	"github.com/yunpil/youtube/internal/suggester"
	"github.com/yunpil/youtube/internal/synthesizer"
)

type Pipeline struct {
	Orchestrator orchestrator.Orchestrator
	Credentials  credential.Holder
}

// NewPipeline builds the credential holder and the generation pipeline.
// A key from configuration is used only when the store holds none.
func NewPipeline(cfg *config.Config, log logger.Logger, m *metrics.Metrics) (*Pipeline, error) {
	var store credential.Store
	if cfg.Credential.StorePath != "" {
		store = credential.NewFileStore(cfg.Credential.StorePath)
	}

	holder, err := credential.New(store, log)
	if err != nil {
		return nil, fmt.Errorf("init credential holder: %w", err)
	}
	if !holder.IsConfigured() && cfg.Gemini.APIKey != "" {
		if err := holder.Set(cfg.Gemini.APIKey); err != nil {
			return nil, fmt.Errorf("seed credential: %w", err)
		}
	}
	if !holder.IsConfigured() {
		log.Warn(context.Background(), "No Gemini API key configured; requests must supply one")
	}

	client := llm.New(llm.Options{
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	}, log, m)

	orch := orchestrator.New(
		analyzer.New(client, analyzer.Options{ExcerptRunes: cfg.Pipeline.AnalysisExcerpt}, log, m),
		suggester.New(client, suggester.Options{ExcerptRunes: cfg.Pipeline.SuggestionExcerpt}, log, m),
		synthesizer.New(client, synthesizer.Options{Temperature: cfg.Gemini.SynthesisTemperature}, log),
		orchestrator.Limits{
			MinTranscriptLength: cfg.Pipeline.MinTranscriptLength,
			MinTopicLength:      cfg.Pipeline.MinTopicLength,
			MaxTopicLength:      cfg.Pipeline.MaxTopicLength,
		},
		log,
		m,
	)

	return &Pipeline{Orchestrator: orch, Credentials: holder}, nil
}
