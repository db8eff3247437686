package rag

import (
	"sort"
	"sync"

	"github.com/nyaya-ai/legal-engine/internal/embedding"
)

// ScoredChunk is a search hit with its cosine similarity.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Index is an in-memory cosine-similarity index over chunk vectors. Writes
// happen at startup or after a scrape; reads are concurrent.
type Index struct {
	mu      sync.RWMutex
	chunks  []Chunk
	vectors [][]float32
}

func NewIndex() *Index {
	return &Index{}
}

// Add appends one chunk with its vector.
func (ix *Index) Add(chunk Chunk, vector []float32) {
	ix.mu.Lock()
	ix.chunks = append(ix.chunks, chunk)
	ix.vectors = append(ix.vectors, vector)
	ix.mu.Unlock()
}

// Reset drops all indexed chunks.
func (ix *Index) Reset() {
	ix.mu.Lock()
	ix.chunks = nil
	ix.vectors = nil
	ix.mu.Unlock()
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.chunks)
}

// Search returns the k nearest chunks by cosine similarity, best first.
func (ix *Index) Search(vector []float32, k int) []ScoredChunk {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	hits := make([]ScoredChunk, 0, len(ix.chunks))
	for i, v := range ix.vectors {
		hits = append(hits, ScoredChunk{
			Chunk: ix.chunks[i],
			Score: embedding.Cosine(vector, v),
		})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Score > hits[b].Score })

	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
