package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_SearchOrdering(t *testing.T) {
	ix := NewIndex()
	ix.Add(Chunk{Index: 0, Text: "eviction"}, []float32{1, 0, 0})
	ix.Add(Chunk{Index: 1, Text: "deposit"}, []float32{0, 1, 0})
	ix.Add(Chunk{Index: 2, Text: "rent"}, []float32{0.9, 0.1, 0})

	hits := ix.Search([]float32{1, 0, 0}, 0)
	require.Len(t, hits, 3)
	assert.Equal(t, "eviction", hits[0].Chunk.Text)
	assert.Equal(t, "rent", hits[1].Chunk.Text)
	assert.Equal(t, "deposit", hits[2].Chunk.Text)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)
}

func TestIndex_SearchTopK(t *testing.T) {
	ix := NewIndex()
	ix.Add(Chunk{Text: "a"}, []float32{1, 0})
	ix.Add(Chunk{Text: "b"}, []float32{0.5, 0.5})
	ix.Add(Chunk{Text: "c"}, []float32{0, 1})

	hits := ix.Search([]float32{1, 0}, 2)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].Chunk.Text)
	assert.Equal(t, "b", hits[1].Chunk.Text)
}

func TestIndex_EmptyAndReset(t *testing.T) {
	ix := NewIndex()
	assert.Empty(t, ix.Search([]float32{1, 0}, 5))
	assert.Equal(t, 0, ix.Len())

	ix.Add(Chunk{Text: "a"}, []float32{1, 0})
	assert.Equal(t, 1, ix.Len())

	ix.Reset()
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Search([]float32{1, 0}, 5))
}
