package analyzer

import (
	"strings"
	"unicode"
)

// Chunk slices content into consecutive pieces of at most size characters.
// Boundaries are purely positional and may fall inside a word.
// Joining the result reproduces content byte for byte.
func Chunk(content string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if content == "" {
		return nil
	}

	var (
		chunks []string
		start  int
		count  int
	)
	for offset := range content {
		if count == size {
			chunks = append(chunks, content[start:offset])
			start = offset
			count = 0
		}
		count++
	}
	return append(chunks, content[start:])
}

// IsBlank reports whether content has nothing but whitespace.
func IsBlank(content string) bool {
	return strings.TrimFunc(content, isSpace) == ""
}

// CountWords counts maximal runs of non-whitespace characters.
func CountWords(content string) int {
	return len(strings.FieldsFunc(content, isSpace))
}

// CountLines counts the segments produced by splitting on '\n'.
// A trailing newline yields an extra empty segment.
func CountLines(content string) int {
	return strings.Count(content, "\n") + 1
}

// isSpace extends unicode.IsSpace with the ASCII separators U+001C..U+001F,
// which clients commonly treat as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
