package chatgpt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	"github.com/yanqian/text-analyzer/internal/infra/llm/prompt"
)

// Client summarizes text with an OpenAI compatible chat completion endpoint.
type Client struct {
	client openai.Client
	model  string
}

// NewClient constructs a ChatGPT client. baseURL may point at any OpenAI compatible server.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chatgpt api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("chatgpt model cannot be empty")
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
	return &Client{client: openai.NewClient(opts...), model: model}, nil
}

// Summarize implements analyzer.Summarizer.
func (c *Client) Summarize(ctx context.Context, text string, opts analyzer.SummaryOptions) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System(opts)),
			openai.UserMessage(text),
		},
	}
	if opts.MaxLength > 0 {
		params.MaxCompletionTokens = openai.Int(int64(opts.MaxLength))
	}
	if !opts.DoSample {
		params.Temperature = openai.Float(0)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chatgpt request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chatgpt returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("chatgpt returned an empty summary")
	}
	return summary, nil
}

var _ analyzer.Summarizer = (*Client)(nil)
