package llm

import "google.golang.org/genai"

// Purposes label calls in logs and metrics.
const (
	PurposeAnalysis  = "analysis"
	PurposeTopics    = "topics"
	PurposeSynthesis = "synthesis"
)

// Contract describes what shape of answer a call expects back.
// A nil Schema means free text.
type Contract struct {
	Purpose           string
	SystemInstruction string
	Temperature       *float32
	Schema            *genai.Schema
}

// Structured reports whether the answer must be JSON matching Schema.
func (c Contract) Structured() bool {
	return c.Schema != nil
}

func (c Contract) generateConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: c.Temperature,
	}
	if c.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(c.SystemInstruction, genai.RoleUser)
	}
	if c.Structured() {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = c.Schema
	}
	return cfg
}
