package llm

import (
	"context"

	"google.golang.org/genai"

	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
)

type Options struct {
	Model string
	// BaseURL overrides the Gemini endpoint; empty uses the SDK default.
	BaseURL string
}

type implClient struct {
	model     string
	baseURL   string
	logger    logger.Logger
	metrics   *metrics.Metrics
	newModels func(ctx context.Context, apiKey string) (contentGenerator, error)
}

// New creates a Client. A fresh SDK client is built per call because the key
// can change between requests.
func New(opts Options, log logger.Logger, m *metrics.Metrics) Client {
	c := &implClient{
		model:   opts.Model,
		baseURL: opts.BaseURL,
		logger:  log,
		metrics: m,
	}
	c.newModels = c.genaiModels
	return c
}

func (c *implClient) genaiModels(ctx context.Context, apiKey string) (contentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.baseURL,
		},
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}
