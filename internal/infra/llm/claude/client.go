package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	"github.com/yanqian/text-analyzer/internal/infra/llm/prompt"
)

// Client summarizes text with the Anthropic Messages API.
type Client struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewClient constructs a Claude summarizer.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("anthropic api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("anthropic model cannot be empty")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	if base := strings.TrimSpace(baseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	client := anthropic.NewClient(opts...)
	return &Client{client: &client, model: anthropic.Model(model)}, nil
}

// Summarize implements analyzer.Summarizer.
func (c *Client) Summarize(ctx context.Context, text string, opts analyzer.SummaryOptions) (string, error) {
	maxTokens := int64(opts.MaxLength)
	if maxTokens <= 0 {
		maxTokens = analyzer.DefaultMaxLength
	}
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: prompt.System(opts)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}
	if !opts.DoSample {
		params.Temperature = anthropic.Float(0)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var builder strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			builder.WriteString(block.Text)
		}
	}
	summary := strings.TrimSpace(builder.String())
	if summary == "" {
		return "", errors.New("anthropic returned an empty summary")
	}
	return summary, nil
}

var _ analyzer.Summarizer = (*Client)(nil)
