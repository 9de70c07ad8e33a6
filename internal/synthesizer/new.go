package synthesizer

import (
	"errors"

	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/logger"
)

const defaultTemperature = 0.8

// ErrEmptySynthesis means the call succeeded but produced no script.
var ErrEmptySynthesis = errors.New("synthesis returned an empty script")

type Options struct {
	Temperature float32
}

type implSynthesizer struct {
	client      llm.Client
	temperature float32
	logger      logger.Logger
}

func New(client llm.Client, opts Options, log logger.Logger) Synthesizer {
	if opts.Temperature <= 0 {
		opts.Temperature = defaultTemperature
	}
	return &implSynthesizer{
		client:      client,
		temperature: opts.Temperature,
		logger:      log,
	}
}
