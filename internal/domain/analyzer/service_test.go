package analyzer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	apperrors "github.com/yanqian/text-analyzer/pkg/errors"
)

func TestAnalyzeSingleChunk(t *testing.T) {
	t.Parallel()
	stub := &stubSummarizer{}
	svc := analyzer.NewService(testConfig(), stub, wordCounter{}, newTestLogger())

	resp, err := svc.Analyze(context.Background(), analyzer.Request{Content: "The quick brown fox jumps over the lazy dog."})
	require.NoError(t, err)
	require.Equal(t, 9, resp.WordCount)
	require.Equal(t, 1, resp.LineCount)
	require.Equal(t, "summary(44)", resp.Summary)

	require.Len(t, stub.calls, 1)
	require.Equal(t, analyzer.SummaryOptions{MinLength: 30, MaxLength: 130, DoSample: false}, stub.opts[0])
}

func TestAnalyzeJoinsChunkSummariesInOrder(t *testing.T) {
	t.Parallel()
	stub := &stubSummarizer{}
	svc := analyzer.NewService(testConfig(), stub, wordCounter{}, newTestLogger())

	content := strings.Repeat("a", 1000) + strings.Repeat("b", 1000) + "c\n"
	resp, err := svc.Analyze(context.Background(), analyzer.Request{Content: content})
	require.NoError(t, err)
	require.Equal(t, "summary(1000) summary(1000) summary(2)", resp.Summary)
	require.Equal(t, content, strings.Join(stub.calls, ""))
	require.Equal(t, 1, resp.WordCount)
	require.Equal(t, 2, resp.LineCount)
}

func TestAnalyzeRejectsEmptyContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "single space", content: " "},
		{name: "mixed whitespace", content: "\n\t  \r\n"},
		{name: "long whitespace", content: strings.Repeat(" ", 5000)},
		{name: "separator characters", content: "\u001c\u001f"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stub := &stubSummarizer{}
			svc := analyzer.NewService(testConfig(), stub, wordCounter{}, newTestLogger())

			_, err := svc.Analyze(context.Background(), analyzer.Request{Content: tt.content})
			require.EqualError(t, err, "Empty content")
			require.True(t, apperrors.IsCode(err, analyzer.CodeEmptyContent))
			require.Empty(t, stub.calls)
		})
	}
}

func TestAnalyzeFailsWithoutPartialSummary(t *testing.T) {
	t.Parallel()
	stub := &stubSummarizer{failAt: 1, err: errors.New("CUDA out of memory")}
	svc := analyzer.NewService(testConfig(), stub, wordCounter{}, newTestLogger())

	resp, err := svc.Analyze(context.Background(), analyzer.Request{Content: strings.Repeat("x", 2500)})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, analyzer.CodeSummarizeFailed))
	require.Equal(t, "CUDA out of memory", apperrors.Cause(err))
	require.Equal(t, analyzer.Response{}, resp)
	require.Len(t, stub.calls, 2)
}

func TestAnalyzeAppliesDefaultLengths(t *testing.T) {
	t.Parallel()
	stub := &stubSummarizer{}
	svc := analyzer.NewService(analyzer.Config{}, stub, nil, newTestLogger())

	_, err := svc.Analyze(context.Background(), analyzer.Request{Content: strings.Repeat("z", 1001)})
	require.NoError(t, err)
	require.Len(t, stub.calls, 2)
	require.Equal(t, analyzer.SummaryOptions{MinLength: analyzer.DefaultMinLength, MaxLength: analyzer.DefaultMaxLength}, stub.opts[0])
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	t.Parallel()
	svc := analyzer.NewService(testConfig(), &stubSummarizer{}, nil, newTestLogger())
	req := analyzer.Request{Content: strings.Repeat("lorem ipsum ", 300)}

	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func testConfig() analyzer.Config {
	return analyzer.Config{
		ChunkSize:   1000,
		MinLength:   30,
		MaxLength:   130,
		TokenWindow: 1024,
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSummarizer struct {
	mu     sync.Mutex
	calls  []string
	opts   []analyzer.SummaryOptions
	failAt int
	err    error
}

func (s *stubSummarizer) Summarize(_ context.Context, text string, opts analyzer.SummaryOptions) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := len(s.calls)
	s.calls = append(s.calls, text)
	s.opts = append(s.opts, opts)
	if s.err != nil && idx == s.failAt {
		return "", s.err
	}
	return "summary(" + strconv.Itoa(utf8.RuneCountInString(text)) + ")", nil
}

type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }
