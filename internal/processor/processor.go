package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yunpil/youtube/pkg/transcript"
)

// Process runs the generation pipeline for one transcript file. Without a
// topic directive the first suggested topic is used.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	start := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "Starting transcript: %s", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	topic, text := splitTopic(transcript.Normalize(string(raw)))
	cred := p.credentials.Get()

	if topic == "" {
		topics, err := p.orchestrator.SuggestTopics(ctx, text, cred)
		if err != nil {
			return fmt.Errorf("pick topic: %w", err)
		}
		topic = topics[0]
		p.logger.Info(ctx, "No topic directive in %s, using suggestion %q", name, topic)
	}

	result, err := p.orchestrator.Generate(ctx, text, topic, cred)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	mdPath, docxPath, err := p.writeOutputs(ctx, name, result)
	if err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s, %s (%s)", name, mdPath, docxPath, time.Since(start).Round(time.Millisecond))
	return nil
}
