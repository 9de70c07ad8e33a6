package analyzer

import (
	"context"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/models"
)

// Analyzer extracts the stylistic features of a transcript.
type Analyzer interface {
	// Analyze never fails on an unreadable model answer; it substitutes
	// DefaultAnalysis and sets Fallback instead. Only adapter errors surface.
	Analyze(ctx context.Context, transcript string, cred credential.Credential) (models.StyleAnalysis, error)
}
