package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	t.Run("markdown body keeps its text content", func(t *testing.T) {
		rendered := renderMarkdown("# Retry logic\n\nRetries *transient* failures.")

		assert.Contains(t, rendered, "Retry logic")
		assert.Contains(t, rendered, "transient")
	})

	t.Run("plain text survives rendering", func(t *testing.T) {
		rendered := renderMarkdown("just a sentence with no markup")
		assert.Contains(t, rendered, "just a sentence with no markup")
	})

	t.Run("no trailing newlines", func(t *testing.T) {
		rendered := renderMarkdown("one line")
		if len(rendered) > 0 {
			assert.NotEqual(t, byte('\n'), rendered[len(rendered)-1])
		}
	})
}
