package rag

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/legal-engine/internal/embedding"
	"github.com/nyaya-ai/legal-engine/internal/scrape"
)

func newTestRetriever(t *testing.T) *Retriever {
	t.Helper()
	return NewRetriever(openTestStore(t), NewChunker(500, 50), embedding.NewMockClient(32), nil)
}

func TestRetriever_IngestAndRetrieve(t *testing.T) {
	r := newTestRetriever(t)
	ctx := context.Background()

	docs := []scrape.Document{
		{
			URL:       "https://example.gov.in/cheque",
			Title:     "Cheque Bounce",
			Content:   "A bounced cheque attracts prosecution under Section 138.",
			Metadata:  map[string]string{},
			ScrapedAt: time.Now().UTC(),
		},
		{
			URL:       "https://example.gov.in/rent",
			Title:     "Tenancy",
			Content:   "A landlord must refund the security deposit on vacating.",
			Metadata:  map[string]string{},
			ScrapedAt: time.Now().UTC(),
		},
	}
	require.NoError(t, r.Ingest(ctx, docs))

	n, err := r.DocumentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, r.index.Len())

	hits, err := r.Retrieve(ctx, "A bounced cheque attracts prosecution under Section 138.", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "https://example.gov.in/cheque", hits[0].Chunk.DocURL)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)
}

func TestRetriever_RetrieveEmptyIndex(t *testing.T) {
	r := newTestRetriever(t)

	hits, err := r.Retrieve(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestRetriever_ReindexRestoresFromStore(t *testing.T) {
	store := openTestStore(t)
	first := NewRetriever(store, NewChunker(500, 50), embedding.NewMockClient(32), nil)
	ctx := context.Background()

	docs := []scrape.Document{{
		URL:       "https://example.gov.in/fir",
		Title:     "FIR",
		Content:   "File the FIR at the nearest police station.",
		Metadata:  map[string]string{},
		ScrapedAt: time.Now().UTC(),
	}}
	require.NoError(t, first.Ingest(ctx, docs))

	// A fresh retriever over the same store starts empty and rebuilds.
	second := NewRetriever(store, NewChunker(500, 50), embedding.NewMockClient(32), nil)
	assert.Equal(t, 0, second.index.Len())
	require.NoError(t, second.Reindex(ctx))
	assert.Equal(t, 1, second.index.Len())
}
