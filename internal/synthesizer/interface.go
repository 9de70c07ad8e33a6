package synthesizer

import (
	"context"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/models"
)

// Synthesizer writes a new script for topic in the style captured by analysis.
type Synthesizer interface {
	Synthesize(ctx context.Context, analysis models.StyleAnalysis, topic string, cred credential.Credential) (string, error)
}
