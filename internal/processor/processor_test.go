package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yunpil/youtube/internal/config"
	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/models"
)

const testKey = credential.Credential("AIzaSyTestKey0123456789abcdefghijklmn")

type mockOrchestrator struct {
	mock.Mock
}

func (m *mockOrchestrator) Generate(ctx context.Context, transcript, topic string, cred credential.Credential) (*models.GenerationResult, error) {
	args := m.Called(ctx, transcript, topic, cred)
	res, _ := args.Get(0).(*models.GenerationResult)
	return res, args.Error(1)
}

func (m *mockOrchestrator) SuggestTopics(ctx context.Context, transcript string, cred credential.Credential) (models.TopicList, error) {
	args := m.Called(ctx, transcript, cred)
	topics, _ := args.Get(0).(models.TopicList)
	return topics, args.Error(1)
}

type fixture struct {
	proc  Processor
	orch  *mockOrchestrator
	paths config.PathsConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	paths := config.PathsConfig{
		Input:    filepath.Join(root, "input"),
		Output:   filepath.Join(root, "output"),
		Archived: filepath.Join(root, "archived"),
	}
	require.NoError(t, os.MkdirAll(paths.Input, 0755))

	log := logger.New("error", "console")
	holder, err := credential.New(nil, log)
	require.NoError(t, err)
	require.NoError(t, holder.Set(string(testKey)))

	orch := &mockOrchestrator{}
	t.Cleanup(func() { orch.AssertExpectations(t) })

	return &fixture{proc: New(paths, orch, holder, log), orch: orch, paths: paths}
}

func (f *fixture) input(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.paths.Input, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func result(t *testing.T, topic string) *models.GenerationResult {
	t.Helper()
	res, err := models.NewGenerationResult(topic, models.StyleAnalysis{HookStrategy: "h", StructureSteps: []string{"Intro"}}, "생성된 대본")
	require.NoError(t, err)
	return res
}

func TestProcessWithTopicDirective(t *testing.T) {
	f := newFixture(t)
	path := f.input(t, "episode1.txt", "주제: 다이소 꿀템\n\n원본 대본 첫 줄\n원본 대본 둘째 줄")

	f.orch.On("Generate", mock.Anything, "원본 대본 첫 줄\n원본 대본 둘째 줄", "다이소 꿀템", testKey).
		Return(result(t, "다이소 꿀템"), nil).Once()

	require.NoError(t, f.proc.Process(context.Background(), path))

	md, err := os.ReadFile(filepath.Join(f.paths.Output, "episode1.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "생성된 대본")
	assert.FileExists(t, filepath.Join(f.paths.Output, "episode1.docx"))
	assert.FileExists(t, filepath.Join(f.paths.Archived, "episode1.txt"))
	assert.NoFileExists(t, path)
}

func TestProcessSRTUsesSuggestedTopic(t *testing.T) {
	f := newFixture(t)
	srt := "1\n00:00:01,000 --> 00:00:02,000\n안녕하세요\n\n2\n00:00:02,000 --> 00:00:04,000\n오늘의 꿀팁\n"
	path := f.input(t, "clip.srt", srt)

	f.orch.On("SuggestTopics", mock.Anything, "안녕하세요\n오늘의 꿀팁", testKey).
		Return(models.TopicList{"첫 번째", "b", "c", "d", "e"}, nil).Once()
	f.orch.On("Generate", mock.Anything, "안녕하세요\n오늘의 꿀팁", "첫 번째", testKey).
		Return(result(t, "첫 번째"), nil).Once()

	require.NoError(t, f.proc.Process(context.Background(), path))
	assert.FileExists(t, filepath.Join(f.paths.Output, "clip.md"))
}

func TestProcessFailureLeavesSource(t *testing.T) {
	f := newFixture(t)
	path := f.input(t, "bad.txt", "topic: x y z\n본문")

	f.orch.On("Generate", mock.Anything, "본문", "x y z", testKey).Return(nil, llm.ErrQuota).Once()

	err := f.proc.Process(context.Background(), path)
	assert.ErrorIs(t, err, llm.ErrQuota)
	assert.FileExists(t, path)
	assert.NoDirExists(t, f.paths.Output)
}

func TestArchiveDoesNotOverwrite(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.paths.Archived, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.paths.Archived, "dup.txt"), []byte("old"), 0644))

	path := f.input(t, "dup.txt", "주제: 새 주제\n본문")
	f.orch.On("Generate", mock.Anything, "본문", "새 주제", testKey).Return(result(t, "새 주제"), nil).Once()

	require.NoError(t, f.proc.Process(context.Background(), path))
	assert.FileExists(t, filepath.Join(f.paths.Archived, "dup-1.txt"))

	old, err := os.ReadFile(filepath.Join(f.paths.Archived, "dup.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}

func TestSplitTopic(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTopic string
		wantText  string
	}{
		{"english directive", "Topic: Morning routine\nbody", "Morning routine", "body"},
		{"korean directive with full-width colon", "\n주제： 캠핑 입문\n\n본문", "캠핑 입문", "본문"},
		{"no directive", "그냥 대본입니다\n둘째 줄", "", "그냥 대본입니다\n둘째 줄"},
		{"directive not on first line", "본문\ntopic: late", "", "본문\ntopic: late"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, text := splitTopic(tt.in)
			assert.Equal(t, tt.wantTopic, topic)
			assert.Equal(t, tt.wantText, strings.TrimSpace(text))
		})
	}
}
