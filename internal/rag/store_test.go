package rag

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/legal-engine/internal/scrape"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testDocument() scrape.Document {
	return scrape.Document{
		URL:     "https://example.gov.in/consumer",
		Title:   "Consumer Complaints",
		Content: "How to file a consumer complaint.",
		Metadata: map[string]string{
			"source": "example.gov.in",
		},
		QAPairs: []scrape.QAPair{
			{Question: "Where do I file?", Answer: "The district commission."},
		},
		ScrapedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc := testDocument()
	chunks := []Chunk{
		{DocURL: doc.URL, Title: doc.Title, Index: 0, Text: "How to file"},
		{DocURL: doc.URL, Title: doc.Title, Index: 1, Text: "a consumer complaint."},
	}
	require.NoError(t, store.SaveDocument(ctx, doc, chunks))

	n, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loaded, err := store.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, doc.URL, loaded[0].URL)
	assert.Equal(t, doc.Title, loaded[0].Title)
	assert.Equal(t, doc.Metadata, loaded[0].Metadata)
	assert.Equal(t, doc.QAPairs, loaded[0].QAPairs)

	got, err := store.LoadChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, chunks, got)
}

func TestStore_SaveReplacesChunks(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	doc := testDocument()
	require.NoError(t, store.SaveDocument(ctx, doc, []Chunk{
		{DocURL: doc.URL, Index: 0, Text: "old text"},
		{DocURL: doc.URL, Index: 1, Text: "more old text"},
	}))

	doc.Content = "Updated content."
	require.NoError(t, store.SaveDocument(ctx, doc, []Chunk{
		{DocURL: doc.URL, Index: 0, Text: "new text"},
	}))

	n, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	chunks, err := store.LoadChunks(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "new text", chunks[0].Text)

	docs, err := store.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Updated content.", docs[0].Content)
}

func TestStore_EmptyCounts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	chunks, err := store.LoadChunks(ctx)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestRebindPostgres(t *testing.T) {
	pg := &Store{driver: "postgres"}
	assert.Equal(t,
		`INSERT INTO chunks (doc_url, idx, title, body) VALUES ($1, $2, $3, $4)`,
		pg.rebind(`INSERT INTO chunks (doc_url, idx, title, body) VALUES (?, ?, ?, ?)`))

	lite := &Store{driver: "sqlite3"}
	assert.Equal(t, `SELECT * FROM documents WHERE url = ?`,
		lite.rebind(`SELECT * FROM documents WHERE url = ?`))
}
