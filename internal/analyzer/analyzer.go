package analyzer

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

const failureMessage = "대본을 분석하지 못했습니다."

var reCodeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// payload mirrors the response schema. Pointers tell "absent" from "empty".
type payload struct {
	HookStrategy       *string  `json:"hookStrategy"`
	Pacing             *string  `json:"pacing"`
	Tone               *string  `json:"tone"`
	StructureBreakdown []string `json:"structureBreakdown"`
	KeyKeywords        []string `json:"keyKeywords"`
}

func (a *implAnalyzer) Analyze(ctx context.Context, text string, cred credential.Credential) (models.StyleAnalysis, error) {
	excerpt := transcript.Excerpt(text, a.excerpt)

	raw, err := a.client.Call(ctx, buildPrompt(excerpt), llm.Contract{
		Purpose:           llm.PurposeAnalysis,
		SystemInstruction: systemInstruction,
		Schema:            analysisSchema,
	}, cred)
	if err != nil {
		return models.StyleAnalysis{}, llm.Wrap(err, failureMessage)
	}

	analysis, reason := parse(raw)
	if analysis.Fallback {
		a.metrics.IncFallback(llm.PurposeAnalysis)
		a.logger.Warn(ctx, "Analysis answer degraded to defaults (%s); %d chars received", reason, len(raw))
	} else {
		a.logger.Info(ctx, "Analysis complete: %d structure steps, %d keywords", len(analysis.StructureSteps), len(analysis.Keywords))
	}
	return analysis, nil
}

// parse turns the model answer into a complete StyleAnalysis. The second
// return value describes why defaults were used and is empty otherwise.
func parse(raw string) (models.StyleAnalysis, string) {
	body := strings.TrimSpace(raw)
	if m := reCodeFence.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	var p payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return DefaultAnalysis(), "malformed json: " + err.Error()
	}

	def := DefaultAnalysis()
	out := models.StyleAnalysis{
		HookStrategy:   stringOr(p.HookStrategy, def.HookStrategy),
		Pacing:         stringOr(p.Pacing, def.Pacing),
		Tone:           stringOr(p.Tone, def.Tone),
		StructureSteps: listOr(p.StructureBreakdown, def.StructureSteps),
		Keywords:       listOr(p.KeyKeywords, def.Keywords),
	}

	var missing []string
	if p.HookStrategy == nil || strings.TrimSpace(*p.HookStrategy) == "" {
		missing = append(missing, "hookStrategy")
	}
	if p.Pacing == nil || strings.TrimSpace(*p.Pacing) == "" {
		missing = append(missing, "pacing")
	}
	if p.Tone == nil || strings.TrimSpace(*p.Tone) == "" {
		missing = append(missing, "tone")
	}
	if len(clean(p.StructureBreakdown)) == 0 {
		missing = append(missing, "structureBreakdown")
	}
	if len(clean(p.KeyKeywords)) == 0 {
		missing = append(missing, "keyKeywords")
	}
	if len(missing) > 0 {
		out.Fallback = true
		return out, "missing " + strings.Join(missing, ", ")
	}
	return out, ""
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	if s := strings.TrimSpace(*v); s != "" {
		return s
	}
	return def
}

func listOr(v []string, def []string) []string {
	if c := clean(v); len(c) > 0 {
		return c
	}
	return def
}

func clean(items []string) []string {
	var out []string
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
