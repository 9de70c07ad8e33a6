package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/metrics"
)

const testKey = credential.Credential("AIzaSyTestKey0123456789abcdefghijklmn")

// fakeGemini answers generateContent requests with a fixed status and body.
type fakeGemini struct {
	status int
	body   string
	calls  atomic.Int32

	mu       sync.Mutex
	lastKey  string
	lastBody map[string]any
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	raw, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.lastKey = r.Header.Get("x-goog-api-key")
	_ = json.Unmarshal(raw, &f.lastBody)
	f.mu.Unlock()

	if !strings.HasSuffix(r.URL.Path, ":generateContent") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func textBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, fake *fakeGemini) (Client, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	m := metrics.New()
	return New(Options{Model: "gemini-test", BaseURL: srv.URL}, logger.New("error", "console"), m), m
}

func TestCallReturnsText(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, body: textBody("안녕하세요")}
	client, m := newTestClient(t, fake)

	temp := float32(0.8)
	got, err := client.Call(context.Background(), "write a script", Contract{
		Purpose:     PurposeSynthesis,
		Temperature: &temp,
	}, testKey)

	require.NoError(t, err)
	assert.Equal(t, "안녕하세요", got)
	assert.Equal(t, int32(1), fake.calls.Load())
	fake.mu.Lock()
	assert.Equal(t, string(testKey), fake.lastKey)
	fake.mu.Unlock()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelCalls().WithLabelValues(PurposeSynthesis, "ok")))
}

func TestCallSendsStructuredContract(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, body: textBody(`{"topics":["a"]}`)}
	client, _ := newTestClient(t, fake)

	_, err := client.Call(context.Background(), "suggest", Contract{
		Purpose:           PurposeTopics,
		SystemInstruction: "Answer in Korean.",
		Schema: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"topics": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}},
			Required:   []string{"topics"},
		},
	}, testKey)
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	genCfg, ok := fake.lastBody["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request: %v", fake.lastBody)
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])
	assert.NotNil(t, fake.lastBody["systemInstruction"])
}

func TestCallClassifiesRemoteFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`,
			want:   ErrQuota,
		},
		{
			name:   "quota in message",
			status: http.StatusForbidden,
			body:   `{"error":{"code":403,"message":"Quota exceeded for project","status":"PERMISSION_DENIED"}}`,
			want:   ErrQuota,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`,
			want:   ErrTransport,
		},
		{
			name:   "remote key rejection",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
			want:   ErrTransport,
		},
		{
			name:   "empty candidates",
			status: http.StatusOK,
			body:   `{"candidates":[]}`,
			want:   ErrEmptyResponse,
		},
		{
			name:   "blank text",
			status: http.StatusOK,
			body:   textBody("   "),
			want:   ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGemini{status: tt.status, body: tt.body}
			client, _ := newTestClient(t, fake)

			got, err := client.Call(context.Background(), "prompt", Contract{Purpose: PurposeAnalysis}, testKey)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, int32(1), fake.calls.Load(), "exactly one attempt")
		})
	}
}

func TestCallRejectsCredentialBeforeDispatch(t *testing.T) {
	for _, cred := range []credential.Credential{"", credential.Placeholder, "sk-not-gemini"} {
		fake := &fakeGemini{status: http.StatusOK, body: textBody("unused")}
		client, _ := newTestClient(t, fake)

		_, err := client.Call(context.Background(), "prompt", Contract{Purpose: PurposeAnalysis}, cred)
		assert.ErrorIs(t, err, ErrAuth)
		assert.Zero(t, fake.calls.Load())
	}
}

func TestCallCancelledContextIsTransport(t *testing.T) {
	fake := &fakeGemini{status: http.StatusOK, body: textBody("late")}
	client, _ := newTestClient(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Call(ctx, "prompt", Contract{Purpose: PurposeAnalysis}, testKey)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

type stubModels struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (s stubModels) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return s.resp, s.err
}

func TestCallClassifiesSDKErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"api error value", genai.APIError{Code: 429}, ErrQuota},
		{"api error pointer", &genai.APIError{Status: "RESOURCE_EXHAUSTED"}, ErrQuota},
		{"plain quota text", errors.New("429 quota exhausted"), ErrQuota},
		{"deadline", context.DeadlineExceeded, ErrTransport},
		{"dial failure", errors.New("dial tcp: connection refused"), ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Options{Model: "gemini-test"}, logger.New("error", "console"), nil).(*implClient)
			c.newModels = func(context.Context, string) (contentGenerator, error) {
				return stubModels{err: tt.err}, nil
			}

			_, err := c.Call(context.Background(), "prompt", Contract{}, testKey)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCallSkipsThoughtParts(t *testing.T) {
	c := New(Options{Model: "gemini-test"}, logger.New("error", "console"), nil).(*implClient)
	c.newModels = func(context.Context, string) (contentGenerator, error) {
		return stubModels{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "thinking...", Thought: true},
					{Text: "answer"},
				}},
			}},
		}}, nil
	}

	got, err := c.Call(context.Background(), "prompt", Contract{}, testKey)
	require.NoError(t, err)
	assert.Equal(t, "answer", got)
}
