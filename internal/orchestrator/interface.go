package orchestrator

import (
	"context"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/models"
)

// Orchestrator runs the generation pipeline for one user action.
type Orchestrator interface {
	// Generate analyzes transcript and then writes a script for topic.
	Generate(ctx context.Context, transcript, topic string, cred credential.Credential) (*models.GenerationResult, error)
	// SuggestTopics proposes topics for transcript without generating a script.
	SuggestTopics(ctx context.Context, transcript string, cred credential.Credential) (models.TopicList, error)
}
