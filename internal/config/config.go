package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Credential  CredentialConfig  `yaml:"credential"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr" split_words:"true"`
	RequestTimeout time.Duration `yaml:"request_timeout" split_words:"true"`
	AllowedOrigins []string      `yaml:"allowed_origins" split_words:"true"`
}

type GeminiConfig struct {
	Model                string  `yaml:"model" split_words:"true"`
	BaseURL              string  `yaml:"base_url" split_words:"true"`
	APIKey               string  `yaml:"api_key" split_words:"true"`
	SynthesisTemperature float32 `yaml:"synthesis_temperature" split_words:"true"`
}

type PipelineConfig struct {
	AnalysisExcerpt     int `yaml:"analysis_excerpt" split_words:"true"`
	SuggestionExcerpt   int `yaml:"suggestion_excerpt" split_words:"true"`
	MinTranscriptLength int `yaml:"min_transcript_length" split_words:"true"`
	MinTopicLength      int `yaml:"min_topic_length" split_words:"true"`
	MaxTopicLength      int `yaml:"max_topic_length" split_words:"true"`
}

type CredentialConfig struct {
	// StorePath enables the dotenv file store when non-empty.
	StorePath string `yaml:"store_path" split_words:"true"`
}

type PathsConfig struct {
	Input    string `yaml:"input" split_words:"true"`
	Output   string `yaml:"output" split_words:"true"`
	Archived string `yaml:"archived" split_words:"true"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" split_words:"true"`
}

// Validate checks required fields and fills defaults for the rest.
func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.SynthesisTemperature < 0 || c.Gemini.SynthesisTemperature > 2 {
		return fmt.Errorf("gemini.synthesis_temperature must be between 0 and 2")
	}
	if c.Gemini.SynthesisTemperature == 0 {
		c.Gemini.SynthesisTemperature = 0.8
	}

	if c.Pipeline.AnalysisExcerpt < 0 || c.Pipeline.SuggestionExcerpt < 0 {
		return fmt.Errorf("pipeline excerpt bounds must not be negative")
	}
	if c.Pipeline.AnalysisExcerpt == 0 {
		c.Pipeline.AnalysisExcerpt = 15000
	}
	if c.Pipeline.SuggestionExcerpt == 0 {
		c.Pipeline.SuggestionExcerpt = 5000
	}
	if c.Pipeline.MinTranscriptLength == 0 {
		c.Pipeline.MinTranscriptLength = 51
	}
	if c.Pipeline.MinTopicLength == 0 {
		c.Pipeline.MinTopicLength = 3
	}
	if c.Pipeline.MaxTopicLength == 0 {
		c.Pipeline.MaxTopicLength = 100
	}
	if c.Pipeline.MaxTopicLength < 4 {
		return fmt.Errorf("pipeline.max_topic_length must be at least 4")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must not be negative")
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 2 * time.Minute
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
