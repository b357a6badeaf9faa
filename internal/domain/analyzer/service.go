package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/text-analyzer/pkg/errors"
)

// Service analyzes raw text.
type Service interface {
	Analyze(ctx context.Context, req Request) (Response, error)
}

// Summarizer is the pretrained summarization model. Implementations must be
// safe for concurrent use and must return an error instead of degraded output.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error)
}

// TokenCounter estimates how many model tokens a piece of text occupies.
type TokenCounter interface {
	Count(text string) int
}

type service struct {
	cfg        Config
	summarizer Summarizer
	tokens     TokenCounter
	logger     *slog.Logger
}

// NewService is a wire provider for the analyzer domain.
func NewService(cfg Config, summarizer Summarizer, tokens TokenCounter, logger *slog.Logger) Service {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	return &service{
		cfg:        cfg,
		summarizer: summarizer,
		tokens:     tokens,
		logger:     logger.With("component", "analyzer.service"),
	}
}

func (s *service) Analyze(ctx context.Context, req Request) (Response, error) {
	content := req.Content
	if IsBlank(content) {
		return Response{}, apperrors.Wrap(CodeEmptyContent, EmptyContentMessage, nil)
	}

	chunks := Chunk(content, s.cfg.ChunkSize)
	s.inspect(chunks)

	opts := SummaryOptions{
		MinLength: s.cfg.MinLength,
		MaxLength: s.cfg.MaxLength,
		DoSample:  s.cfg.DoSample,
	}
	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := s.summarizer.Summarize(ctx, chunk, opts)
		if err != nil {
			s.logger.Error("chunk summarization failed", "chunk", i+1, "chunks", len(chunks), "error", err)
			return Response{}, apperrors.Wrap(CodeSummarizeFailed, fmt.Sprintf("summarize chunk %d of %d", i+1, len(chunks)), err)
		}
		summaries = append(summaries, summary)
	}

	return Response{
		Summary:   strings.Join(summaries, " "),
		WordCount: CountWords(content),
		LineCount: CountLines(content),
	}, nil
}

// inspect logs chunk diagnostics. Chunks are cut by characters, so a chunk can
// exceed the model's token window; that is reported here and never corrected.
func (s *service) inspect(chunks []string) {
	if s.tokens == nil {
		return
	}
	total := 0
	for i, chunk := range chunks {
		estimated := s.tokens.Count(chunk)
		total += estimated
		if s.cfg.TokenWindow > 0 && estimated > s.cfg.TokenWindow {
			s.logger.Warn("chunk exceeds model token window", "chunk", i, "estimated_tokens", estimated, "window", s.cfg.TokenWindow)
		}
	}
	s.logger.Debug("content chunked", "chunks", len(chunks), "chunk_size", s.cfg.ChunkSize, "estimated_tokens", total)
}
