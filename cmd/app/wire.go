//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/text-analyzer/internal/bootstrap"
	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	"github.com/yanqian/text-analyzer/internal/infra/config"
	"github.com/yanqian/text-analyzer/internal/infra/tokens"
	httpiface "github.com/yanqian/text-analyzer/internal/interface/http"
	"github.com/yanqian/text-analyzer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAnalyzerConfig,
		provideSummarizer,
		provideTokenEstimator,
		analyzer.NewService,
		wire.Bind(new(analyzer.TokenCounter), new(*tokens.Estimator)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
