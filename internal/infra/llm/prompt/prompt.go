// Package prompt holds the instructions shared by the chat-model summarizers.
package prompt

import (
	"fmt"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
)

const systemPrompt = `You are an abstractive summarization model.
Condense the user's text into a faithful summary written in your own words.
Do not add facts that are not in the text and do not comment on the task.
The text may start or end mid-word because it is one slice of a longer document; summarize what is there.
Reply with the summary only, as plain prose in the language of the input.`

// System returns the system prompt including the requested length bounds.
func System(opts analyzer.SummaryOptions) string {
	if opts.MinLength <= 0 && opts.MaxLength <= 0 {
		return systemPrompt
	}
	return fmt.Sprintf("%s\nThe summary must be between %d and %d tokens long.", systemPrompt, opts.MinLength, opts.MaxLength)
}
