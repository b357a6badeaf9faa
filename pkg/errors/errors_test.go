package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapMessage(t *testing.T) {
	t.Parallel()

	require.EqualError(t, Wrap("empty_content", "Empty content", nil), "Empty content")

	cause := errors.New("model offline")
	err := Wrap("summarize_failed", "summarize chunk 0", cause)
	require.EqualError(t, err, "summarize chunk 0: model offline")
	require.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", Wrap("empty_content", "Empty content", nil))
	require.True(t, IsCode(wrapped, "empty_content"))
	require.False(t, IsCode(wrapped, "summarize_failed"))
	require.False(t, IsCode(errors.New("plain"), ""))
	require.Equal(t, "", CodeOf(errors.New("plain")))
}

func TestCause(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Cause(nil))
	require.Equal(t, "Empty content", Cause(Wrap("empty_content", "Empty content", nil)))
	require.Equal(t, "CUDA out of memory", Cause(Wrap("summarize_failed", "summarize chunk 1 of 1", errors.New("CUDA out of memory"))))
	require.Equal(t, "plain", Cause(errors.New("plain")))
}
