package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/models"
	"github.com/yunpil/youtube/pkg/transcript"
)

const (
	opGenerate = "generate"
	opSuggest  = "suggest"
)

func (o *implOrchestrator) Generate(ctx context.Context, text, topic string, cred credential.Credential) (*models.GenerationResult, error) {
	topic = strings.TrimSpace(topic)
	if err := o.checkCommon(text, cred); err != nil {
		o.record(opGenerate, err)
		return nil, err
	}
	if err := o.checkTopic(topic); err != nil {
		o.record(opGenerate, err)
		return nil, err
	}

	start := time.Now()
	o.logger.Info(ctx, "Generating script for topic %q from %d-char transcript", topic, transcript.Length(text))

	analysis, err := o.analyzer.Analyze(ctx, text, cred)
	if err != nil {
		o.record(opGenerate, err)
		return nil, fmt.Errorf("analyze transcript: %w", err)
	}

	script, err := o.synthesizer.Synthesize(ctx, analysis, topic, cred)
	if err != nil {
		o.record(opGenerate, err)
		return nil, fmt.Errorf("synthesize script: %w", err)
	}

	result, err := models.NewGenerationResult(topic, analysis, script)
	if err != nil {
		o.record(opGenerate, err)
		return nil, err
	}

	o.record(opGenerate, nil)
	o.logger.Info(ctx, "Generation %s done in %v (fallback analysis: %t)", result.ID, time.Since(start).Round(time.Millisecond), analysis.Fallback)
	return result, nil
}

func (o *implOrchestrator) SuggestTopics(ctx context.Context, text string, cred credential.Credential) (models.TopicList, error) {
	if err := o.checkCommon(text, cred); err != nil {
		o.record(opSuggest, err)
		return nil, err
	}

	topics, err := o.suggester.Suggest(ctx, text, cred)
	if err != nil {
		o.record(opSuggest, err)
		return nil, fmt.Errorf("suggest topics: %w", err)
	}

	o.record(opSuggest, nil)
	return topics, nil
}

// checkCommon gates the credential first, then the transcript. Nothing
// remote happens until both pass.
func (o *implOrchestrator) checkCommon(text string, cred credential.Credential) error {
	if err := llm.ValidateCredential(cred); err != nil {
		return err
	}
	if transcript.Length(strings.TrimSpace(text)) < o.limits.MinTranscriptLength {
		return &ValidationError{
			Field:   "transcript",
			Message: fmt.Sprintf("원본 대본은 %d자보다 길어야 합니다.", o.limits.MinTranscriptLength-1),
		}
	}
	return nil
}

func (o *implOrchestrator) checkTopic(topic string) error {
	n := transcript.Length(topic)
	if n < o.limits.MinTopicLength {
		return &ValidationError{
			Field:   "topic",
			Message: fmt.Sprintf("새 주제는 %d자보다 길어야 합니다.", o.limits.MinTopicLength-1),
		}
	}
	if o.limits.MaxTopicLength > 0 && n > o.limits.MaxTopicLength {
		return &ValidationError{
			Field:   "topic",
			Message: fmt.Sprintf("새 주제는 %d자 이내로 입력해주세요.", o.limits.MaxTopicLength),
		}
	}
	return nil
}

func (o *implOrchestrator) record(op string, err error) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidInput):
		status = "invalid"
	default:
		kind, _ := llm.KindOf(err)
		status = kind.String()
	}
	o.metrics.IncGeneration(op, status)
}
