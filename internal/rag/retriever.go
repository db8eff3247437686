package rag

import (
	"context"
	"fmt"

	"github.com/nyaya-ai/legal-engine/internal/embedding"
	"github.com/nyaya-ai/legal-engine/internal/observability"
	"github.com/nyaya-ai/legal-engine/internal/scrape"
)

// Retriever ties the store, chunker, embedder, and index into the ingest and
// search operations used by the scrape command and the initialize endpoint.
type Retriever struct {
	store    *Store
	chunker  *Chunker
	embedder embedding.Embedder
	index    *Index
	log      *observability.Logger
}

func NewRetriever(store *Store, chunker *Chunker, embedder embedding.Embedder, log *observability.Logger) *Retriever {
	if log == nil {
		log = observability.Nop()
	}
	return &Retriever{
		store:    store,
		chunker:  chunker,
		embedder: embedder,
		index:    NewIndex(),
		log:      log,
	}
}

// Ingest chunks and persists the documents, then rebuilds the index.
func (r *Retriever) Ingest(ctx context.Context, docs []scrape.Document) error {
	for _, doc := range docs {
		chunks := r.chunker.Split(doc.URL, doc.Title, doc.Content)
		if err := r.store.SaveDocument(ctx, doc, chunks); err != nil {
			return fmt.Errorf("save %s: %w", doc.URL, err)
		}
		r.log.Info().Str("url", doc.URL).Int("chunks", len(chunks)).Msg("document ingested")
	}
	return r.Reindex(ctx)
}

// Reindex rebuilds the in-memory index from the store.
func (r *Retriever) Reindex(ctx context.Context) error {
	chunks, err := r.store.LoadChunks(ctx)
	if err != nil {
		return err
	}

	r.index.Reset()
	for _, chunk := range chunks {
		vec, err := r.embedder.EmbedSingle(ctx, chunk.Text)
		if err != nil {
			return fmt.Errorf("embed chunk %s/%d: %w", chunk.DocURL, chunk.Index, err)
		}
		r.index.Add(chunk, vec)
	}
	r.log.Info().Int("chunks", r.index.Len()).Msg("index rebuilt")
	return nil
}

// Retrieve returns the k most similar chunks for the query.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]ScoredChunk, error) {
	if r.index.Len() == 0 {
		return nil, nil
	}
	vec, err := r.embedder.EmbedSingle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return r.index.Search(vec, k), nil
}

// DocumentCount reports how many documents are persisted.
func (r *Retriever) DocumentCount(ctx context.Context) (int, error) {
	return r.store.CountDocuments(ctx)
}
