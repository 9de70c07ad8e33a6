package llm

import (
	"context"

	"google.golang.org/genai"

	"github.com/yunpil/youtube/internal/credential"
)

// Client sends one prompt to the model and returns its raw text answer.
// Failures are always *Error values.
type Client interface {
	Call(ctx context.Context, prompt string, contract Contract, cred credential.Credential) (string, error)
}

// contentGenerator is the slice of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}
