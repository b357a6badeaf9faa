package chatgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "  A fox leaps over a dog.  "}}
  ]
}`

func TestSummarizeUsesDeterministicDecoding(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	client, err := NewClient("sk-test", srv.URL+"/v1", "gpt-4o-mini", time.Second)
	require.NoError(t, err)

	summary, err := client.Summarize(context.Background(), "The quick brown fox jumps over the lazy dog.", analyzer.SummaryOptions{MinLength: 30, MaxLength: 130})
	require.NoError(t, err)
	require.Equal(t, "A fox leaps over a dog.", summary)

	require.Equal(t, "gpt-4o-mini", got["model"])
	require.EqualValues(t, 130, got["max_completion_tokens"])
	require.EqualValues(t, 0, got["temperature"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
}

func TestSummarizeSurfacesAPIErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient("sk-test", srv.URL+"/v1", "gpt-4o-mini", time.Second)
	require.NoError(t, err)

	_, err = client.Summarize(context.Background(), "text", analyzer.SummaryOptions{MinLength: 30, MaxLength: 130})
	require.ErrorContains(t, err, "chatgpt request failed")
	require.Equal(t, 1, calls)
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()
	_, err := NewClient("", "", "gpt-4o-mini", 0)
	require.EqualError(t, err, "chatgpt api key cannot be empty")
	_, err = NewClient("sk", "", " ", 0)
	require.EqualError(t, err, "chatgpt model cannot be empty")
}
