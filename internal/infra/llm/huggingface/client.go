package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// Parameters mirrors the generation parameters of the summarization task.
type Parameters struct {
	MinLength int  `json:"min_length,omitempty"`
	MaxLength int  `json:"max_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

// Options controls inference API behavior.
type Options struct {
	WaitForModel bool `json:"wait_for_model"`
}

// SummarizationRequest is the payload sent to the inference API.
type SummarizationRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
	Options    Options    `json:"options"`
}

// SummarizationResult is one element of the inference API response.
type SummarizationResult struct {
	SummaryText string `json:"summary_text"`
}

type apiError struct {
	Error string `json:"error"`
}

// Client calls a hosted summarization model over the Hugging Face Inference API.
type Client struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewClient constructs an inference client for model. An empty apiKey sends anonymous requests.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	model = strings.Trim(strings.TrimSpace(model), "/")
	if model == "" {
		return nil, errors.New("huggingface model cannot be empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	endpoint, err := url.JoinPath(strings.TrimRight(baseURL, "/"), "models", model)
	if err != nil {
		return nil, fmt.Errorf("build huggingface endpoint: %w", err)
	}
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		endpoint:   endpoint,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Summarize runs one summarization call and returns the generated text.
func (c *Client) Summarize(ctx context.Context, text string, opts analyzer.SummaryOptions) (string, error) {
	body, err := c.doRequest(ctx, SummarizationRequest{
		Inputs: text,
		Parameters: Parameters{
			MinLength: opts.MinLength,
			MaxLength: opts.MaxLength,
			DoSample:  opts.DoSample,
		},
		Options: Options{WaitForModel: true},
	})
	if err != nil {
		return "", err
	}

	var results []SummarizationResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("decode summarization response: %w", err)
	}
	if len(results) == 0 {
		return "", errors.New("huggingface returned no summaries")
	}
	summary := strings.TrimSpace(results[0].SummaryText)
	if summary == "" {
		return "", errors.New("huggingface returned an empty summary")
	}
	return summary, nil
}

func (c *Client) doRequest(ctx context.Context, req SummarizationRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode summarization request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build summarization request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request summarization: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("huggingface request failed: status=%d error=%s", resp.StatusCode, describeError(raw))
	}

	return io.ReadAll(resp.Body)
}

func describeError(raw []byte) string {
	var decoded apiError
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return strings.TrimSpace(string(raw))
}

var _ analyzer.Summarizer = (*Client)(nil)
