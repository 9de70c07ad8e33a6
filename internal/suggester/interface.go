package suggester

import (
	"context"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/models"
)

// Suggester proposes topics that fit the structure of a transcript.
type Suggester interface {
	// Suggest always returns exactly models.TopicCount topics unless the
	// model call itself fails.
	Suggest(ctx context.Context, transcript string, cred credential.Credential) (models.TopicList, error)
}
