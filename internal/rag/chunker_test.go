package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunker_ShortPlainText(t *testing.T) {
	c := NewChunker(500, 50)

	chunks := c.Split("https://example.gov.in/fir", "FIR", "A short note on filing an FIR.")
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short note on filing an FIR.", chunks[0].Text)
	assert.Equal(t, "https://example.gov.in/fir", chunks[0].DocURL)
	assert.Equal(t, "FIR", chunks[0].Title)
	assert.Equal(t, 0, chunks[0].Index)
}

func TestChunker_LongTextOverlaps(t *testing.T) {
	c := NewChunker(100, 20)

	content := strings.Repeat("the limitation period for a civil recovery suit is three years ", 20)
	chunks := c.Split("url", "title", content)
	require.Greater(t, len(chunks), 1)

	for i, ch := range chunks {
		assert.LessOrEqual(t, len(ch.Text), 100, "chunk %d", i)
		assert.Equal(t, i, ch.Index)
	}

	// Consecutive windows share the overlap region.
	for i := 0; i < len(chunks)-1; i++ {
		tail := chunks[i].Text[len(chunks[i].Text)-20:]
		assert.True(t, strings.HasPrefix(chunks[i+1].Text, tail), "chunk %d overlap", i)
	}
}

func TestChunker_HeadingSections(t *testing.T) {
	c := NewChunker(500, 50)

	content := "# Consumer Complaints\n\nIntro paragraph about forums.\n\n" +
		"## District Commission\n\nClaims up to fifty lakh rupees.\n\n" +
		"## State Commission\n\nClaims up to two crore rupees.\n"
	chunks := c.Split("url", "title", content)
	require.NotEmpty(t, chunks)

	var all strings.Builder
	for _, ch := range chunks {
		all.WriteString(ch.Text)
	}
	joined := all.String()
	assert.Contains(t, joined, "Intro paragraph about forums.")
	assert.Contains(t, joined, "Claims up to fifty lakh rupees.")
	assert.Contains(t, joined, "Claims up to two crore rupees.")
}

func TestChunker_DefaultsOnBadConfig(t *testing.T) {
	c := NewChunker(0, 0)
	assert.Equal(t, defaultChunkSize, c.size)
	assert.Equal(t, defaultChunkOverlap, c.overlap)

	// Overlap at or above size would never advance.
	c = NewChunker(100, 100)
	assert.Equal(t, defaultChunkOverlap, c.overlap)
}
