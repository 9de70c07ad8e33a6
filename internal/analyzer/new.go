package analyzer

import (
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
)

const defaultExcerpt = 15000

type Options struct {
	// ExcerptRunes bounds how much of the transcript is sent.
	ExcerptRunes int
}

type implAnalyzer struct {
	client  llm.Client
	excerpt int
	logger  logger.Logger
	metrics *metrics.Metrics
}

func New(client llm.Client, opts Options, log logger.Logger, m *metrics.Metrics) Analyzer {
	if opts.ExcerptRunes <= 0 {
		opts.ExcerptRunes = defaultExcerpt
	}
	return &implAnalyzer{
		client:  client,
		excerpt: opts.ExcerptRunes,
		logger:  log,
		metrics: m,
	}
}
