package orchestrator

import (
	"github.com/yunpil/youtube/internal/analyzer"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
	"github.com/yunpil/youtube/internal/suggester"
	"github.com/yunpil/youtube/internal/synthesizer"
)

// Limits are measured in runes and are inclusive minimums.
type Limits struct {
	MinTranscriptLength int
	MinTopicLength      int
	MaxTopicLength      int
}

type implOrchestrator struct {
	analyzer    analyzer.Analyzer
	suggester   suggester.Suggester
	synthesizer synthesizer.Synthesizer
	limits      Limits
	logger      logger.Logger
	metrics     *metrics.Metrics
}

func New(
	a analyzer.Analyzer,
	s suggester.Suggester,
	syn synthesizer.Synthesizer,
	limits Limits,
	log logger.Logger,
	m *metrics.Metrics,
) Orchestrator {
	if limits.MinTranscriptLength <= 0 {
		limits.MinTranscriptLength = 51
	}
	if limits.MinTopicLength <= 0 {
		limits.MinTopicLength = 3
	}
	return &implOrchestrator{
		analyzer:    a,
		suggester:   s,
		synthesizer: syn,
		limits:      limits,
		logger:      log,
		metrics:     m,
	}
}
