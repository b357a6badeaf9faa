package lead

import (
	"context"
	"strings"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
)

// Summarizer is an offline extractive stand-in for the hosted model. It keeps
// the leading words of the text, stopping at the first sentence end once
// MinLength words are collected and never exceeding MaxLength words.
type Summarizer struct{}

// NewSummarizer constructs the summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize implements analyzer.Summarizer.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts analyzer.SummaryOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	words := strings.Fields(text)
	limit := opts.MaxLength
	if limit <= 0 || limit > len(words) {
		limit = len(words)
	}

	out := make([]string, 0, limit)
	for _, word := range words[:limit] {
		out = append(out, word)
		if len(out) >= opts.MinLength && endsSentence(word) {
			break
		}
	}
	return strings.Join(out, " "), nil
}

func endsSentence(word string) bool {
	word = strings.TrimRight(word, `"')]`)
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
}

var _ analyzer.Summarizer = (*Summarizer)(nil)
