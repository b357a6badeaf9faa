package main

import (
	"fmt"
	"log/slog"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	"github.com/yanqian/text-analyzer/internal/infra/config"
	"github.com/yanqian/text-analyzer/internal/infra/llm/chatgpt"
	"github.com/yanqian/text-analyzer/internal/infra/llm/claude"
	"github.com/yanqian/text-analyzer/internal/infra/llm/huggingface"
	"github.com/yanqian/text-analyzer/internal/infra/llm/lead"
	"github.com/yanqian/text-analyzer/internal/infra/tokens"
)

func provideAnalyzerConfig(cfg *config.Config) analyzer.Config {
	return analyzer.Config{
		ChunkSize:   cfg.Analyzer.ChunkSize,
		MinLength:   cfg.Analyzer.MinLength,
		MaxLength:   cfg.Analyzer.MaxLength,
		DoSample:    cfg.Analyzer.DoSample,
		TokenWindow: cfg.Analyzer.TokenWindow,
	}
}

// provideSummarizer builds the model client once; it is shared by every request.
func provideSummarizer(cfg *config.Config, logger *slog.Logger) (analyzer.Summarizer, error) {
	sc := cfg.Summarizer
	logger.Info("summarizer selected", "provider", sc.Provider, "model", sc.Model)
	switch sc.Provider {
	case config.ProviderHuggingFace:
		return huggingface.NewClient(sc.APIKey, sc.BaseURL, sc.Model, sc.Timeout)
	case config.ProviderOpenAI:
		return chatgpt.NewClient(sc.APIKey, sc.BaseURL, sc.Model, sc.Timeout)
	case config.ProviderAnthropic:
		return claude.NewClient(sc.APIKey, sc.BaseURL, sc.Model, sc.Timeout)
	case config.ProviderLead:
		return lead.NewSummarizer(), nil
	default:
		return nil, fmt.Errorf("unsupported summarizer provider %q", sc.Provider)
	}
}

func provideTokenEstimator(cfg *config.Config, logger *slog.Logger) *tokens.Estimator {
	return tokens.NewEstimator(cfg.Analyzer.TokenEncoding, logger)
}
