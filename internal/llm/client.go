package llm

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/yunpil/youtube/internal/credential"
)

// Call makes exactly one generateContent request. It has no deadline of its
// own; ctx decides how long it may take.
func (c *implClient) Call(ctx context.Context, prompt string, contract Contract, cred credential.Credential) (string, error) {
	if err := ValidateCredential(cred); err != nil {
		c.metrics.ObserveCall(contract.Purpose, KindAuth.String(), 0)
		return "", err
	}

	start := time.Now()
	text, err := c.generate(ctx, prompt, contract, string(cred))
	elapsed := time.Since(start)

	if err != nil {
		kind, _ := KindOf(err)
		c.metrics.ObserveCall(contract.Purpose, kind.String(), elapsed)
		c.logger.Warn(ctx, "Model call %s failed after %v (%s): %v", contract.Purpose, elapsed.Round(time.Millisecond), kind, err)
		return "", err
	}

	c.metrics.ObserveCall(contract.Purpose, "ok", elapsed)
	c.logger.Debug(ctx, "Model call %s returned %d chars in %v", contract.Purpose, len(text), elapsed.Round(time.Millisecond))
	return text, nil
}

func (c *implClient) generate(ctx context.Context, prompt string, contract Contract, apiKey string) (string, error) {
	models, err := c.newModels(ctx, apiKey)
	if err != nil {
		return "", classify(err)
	}

	resp, err := models.GenerateContent(ctx, c.model, genai.Text(prompt), contract.generateConfig())
	if err != nil {
		return "", classify(err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
