package tokens

import (
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
)

// Estimator approximates model token counts with a BPE encoding.
// The hosted model uses its own tokenizer, so counts are estimates only.
type Estimator struct {
	enc *tiktoken.Tiktoken
}

// NewEstimator loads the named encoding. When encoding is empty or cannot be
// loaded the estimator falls back to counting whitespace separated words.
func NewEstimator(encoding string, logger *slog.Logger) *Estimator {
	logger = logger.With("component", "tokens.estimator")
	encoding = strings.TrimSpace(encoding)
	if encoding == "" {
		logger.Info("token encoding disabled, using word counts")
		return &Estimator{}
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		logger.Warn("token encoding unavailable, using word counts", "encoding", encoding, "error", err)
		return &Estimator{}
	}
	return &Estimator{enc: enc}
}

// Count implements analyzer.TokenCounter.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	if e == nil || e.enc == nil {
		return len(strings.Fields(text))
	}
	return len(e.enc.Encode(text, nil, nil))
}

var _ analyzer.TokenCounter = (*Estimator)(nil)
