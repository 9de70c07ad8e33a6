package suggester

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/models"
	"github.com/yunpil/youtube/pkg/transcript"
)

const (
	failureMessage = "주제 추천을 생성하지 못했습니다."
	minTopicRunes  = 4
	maxTopicRunes  = 100
)

var (
	reCodeFence  = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	// Only digits followed by "." or ")" count as numbering, so "10분 요리"
	// keeps its number.
	reLineMarker = regexp.MustCompile(`^(?:[\-\*•]+\s*|\(?\d+[\.\)]\s*|\.\s*)+`)
)

func (s *implSuggester) Suggest(ctx context.Context, text string, cred credential.Credential) (models.TopicList, error) {
	excerpt := transcript.Excerpt(text, s.excerpt)

	raw, err := s.client.Call(ctx, buildPrompt(excerpt), llm.Contract{
		Purpose: llm.PurposeTopics,
		Schema:  topicsSchema,
	}, cred)
	if err != nil {
		return nil, llm.Wrap(err, failureMessage)
	}

	topics, structured := extract(raw)
	if !structured {
		s.metrics.IncFallback(llm.PurposeTopics)
		s.logger.Warn(ctx, "Topic answer was not structured, recovered %d topics from plain lines", len(topics))
	}
	if len(topics) < models.TopicCount {
		s.logger.Info(ctx, "Padding %d suggested topics with defaults", len(topics))
	}
	return pad(topics), nil
}

// extract reads topics from the structured answer, or from its lines when
// the answer is not the expected JSON object.
func extract(raw string) ([]string, bool) {
	body := strings.TrimSpace(raw)
	if m := reCodeFence.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	var p struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(body), &p); err == nil && p.Topics != nil {
		var topics []string
		for _, t := range p.Topics {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
		return topics, true
	}

	return fromLines(raw), false
}

func fromLines(raw string) []string {
	var topics []string
	for _, line := range strings.Split(raw, "\n") {
		t := reLineMarker.ReplaceAllString(strings.TrimSpace(line), "")
		t = strings.Trim(strings.TrimSpace(t), `"'“”‘’*`)
		t = strings.TrimSpace(t)

		n := transcript.Length(t)
		if n < minTopicRunes || n > maxTopicRunes {
			continue
		}
		topics = append(topics, t)
		if len(topics) == models.TopicCount {
			break
		}
	}
	return topics
}

// pad fills up to TopicCount from FallbackTopics in order, and truncates
// anything longer.
func pad(topics []string) models.TopicList {
	out := make(models.TopicList, 0, models.TopicCount)
	for _, t := range topics {
		if len(out) == models.TopicCount {
			break
		}
		out = append(out, t)
	}
	for i := 0; len(out) < models.TopicCount; i++ {
		out = append(out, FallbackTopics[i])
	}
	return out
}
