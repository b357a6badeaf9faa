package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	"github.com/yanqian/text-analyzer/internal/infra/config"
)

// Handler wires the HTTP transport to the analyzer service.
type Handler struct {
	analyzerSvc analyzer.Service
	provider    string
	model       string
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(analyzerSvc analyzer.Service, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		analyzerSvc: analyzerSvc,
		provider:    cfg.Summarizer.Provider,
		model:       cfg.Summarizer.Model,
		logger:      logger.With("component", "http.handler"),
	}
}

// Analyze summarizes the posted content and reports word and line counts.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzer.Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.analyzerSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health reports liveness together with the configured model.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"provider": h.provider,
		"model":    h.model,
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
