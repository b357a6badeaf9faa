package analyzer

const (
	// CodeEmptyContent marks requests whose content is missing or whitespace only.
	CodeEmptyContent = "empty_content"
	// CodeSummarizeFailed marks any failure after the content was accepted.
	CodeSummarizeFailed = "summarize_failed"

	// EmptyContentMessage is returned verbatim to clients.
	EmptyContentMessage = "Empty content"

	DefaultChunkSize = 1000
	DefaultMinLength = 30
	DefaultMaxLength = 130
)

// Config configures chunking and generation bounds.
type Config struct {
	// ChunkSize is measured in characters (Unicode code points), not tokens.
	ChunkSize int
	MinLength int
	MaxLength int
	DoSample  bool
	// TokenWindow is only used to flag oversized chunks in the logs; 0 disables it.
	TokenWindow int
}

// Request represents the /analyze payload.
type Request struct {
	Content string `json:"content"`
}

// Response is returned for a successfully analyzed request.
type Response struct {
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
	LineCount int    `json:"line_count"`
}

// SummaryOptions are the generation parameters handed to the model for every chunk.
type SummaryOptions struct {
	MinLength int
	MaxLength int
	DoSample  bool
}
