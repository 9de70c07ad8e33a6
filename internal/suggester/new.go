package suggester

import (
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
)

const defaultExcerpt = 5000

type Options struct {
	ExcerptRunes int
}

type implSuggester struct {
	client  llm.Client
	excerpt int
	logger  logger.Logger
	metrics *metrics.Metrics
}

func New(client llm.Client, opts Options, log logger.Logger, m *metrics.Metrics) Suggester {
	if opts.ExcerptRunes <= 0 {
		opts.ExcerptRunes = defaultExcerpt
	}
	return &implSuggester{
		client:  client,
		excerpt: opts.ExcerptRunes,
		logger:  log,
		metrics: m,
	}
}
