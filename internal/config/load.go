package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. VIRALCOPY_GEMINI_MODEL.
const EnvPrefix = "VIRALCOPY"

// Load reads the YAML file at path, applies .env files and environment
// overrides on top of it, then validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	loadDotEnv()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv loads optional .env files. Variables already present in the
// environment win.
func loadDotEnv() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		_ = godotenv.Load(name)
	}
}
