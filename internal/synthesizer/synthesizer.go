package synthesizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/models"
)

const failureMessage = "새 대본을 생성하지 못했습니다."

func (s *implSynthesizer) Synthesize(ctx context.Context, analysis models.StyleAnalysis, topic string, cred credential.Credential) (string, error) {
	temperature := s.temperature

	script, err := s.client.Call(ctx, buildPrompt(analysis, topic), llm.Contract{
		Purpose:     llm.PurposeSynthesis,
		Temperature: &temperature,
	}, cred)
	if errors.Is(err, llm.ErrEmptyResponse) {
		return "", fmt.Errorf("%w: %w", ErrEmptySynthesis, llm.Wrap(err, failureMessage))
	}
	if err != nil {
		return "", llm.Wrap(err, failureMessage)
	}
	if strings.TrimSpace(script) == "" {
		return "", fmt.Errorf("%w: %w", ErrEmptySynthesis, llm.Wrap(llm.ErrEmptyResponse, failureMessage))
	}

	s.logger.Info(ctx, "Synthesized %d-char script for topic %q", len([]rune(script)), topic)
	return script, nil
}
