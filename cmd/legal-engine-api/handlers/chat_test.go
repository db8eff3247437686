package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/legal-engine/internal/cache"
	"github.com/nyaya-ai/legal-engine/internal/embedding"
	"github.com/nyaya-ai/legal-engine/internal/knowledge"
	"github.com/nyaya-ai/legal-engine/internal/match"
	"github.com/nyaya-ai/legal-engine/internal/observability"
	"github.com/nyaya-ai/legal-engine/internal/rag"
	"github.com/nyaya-ai/legal-engine/internal/scrape"
)

func newChatHandler(answers *cache.AnswerCache) *ChatHandler {
	engine := match.NewEngine(knowledge.Default(), match.DefaultWeights(), observability.Nop())
	return NewChatHandler(observability.Nop(), engine, answers, nil)
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChat(t *testing.T) {
	rec := postChat(t, newChatHandler(nil), `{"message": "how to file FIR if police refuses"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ChatResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Criminal Law", resp.Category)
	assert.Contains(t, resp.Response, "FIR")
	assert.Regexp(t, regexp.MustCompile(`^conv_[0-9a-f]{8}$`), resp.ConversationID)
	assert.Greater(t, resp.Confidence, 0.0)

	require.NotEmpty(t, resp.Sources)
	for _, s := range resp.Sources {
		assert.NotEmpty(t, s.Title)
		assert.Equal(t, "Official Indian Legal Source", s.Source)
		assert.Equal(t, 1.0, s.Relevance)
	}
}

func TestChat_KeepsProvidedConversationID(t *testing.T) {
	rec := postChat(t, newChatHandler(nil), `{"message": "hello", "conversation_id": "conv_abcd1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "conv_abcd1234", resp.ConversationID)
}

func TestChat_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"message":`},
		{"missing message", `{}`},
		{"blank message", `{"message": "   "}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postChat(t, newChatHandler(nil), tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestChat_GreetingFallbackHasNoSources(t *testing.T) {
	rec := postChat(t, newChatHandler(nil), `{"message": "hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, knowledge.GreetingCategory, resp.Category)
	assert.Empty(t, resp.Sources)
}

func TestChat_RetrievalFallback(t *testing.T) {
	store, err := rag.OpenStore("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	retriever := rag.NewRetriever(store, rag.NewChunker(0, 0), embedding.NewMockClient(32), nil)
	require.NoError(t, retriever.Ingest(context.Background(), []scrape.Document{{
		URL:       "https://example.gov.in/shipping",
		Title:     "Merchant Shipping",
		Content:   "zzqq wwkk yyrr mmnn",
		Metadata:  map[string]string{},
		ScrapedAt: time.Now().UTC(),
	}}))

	engine := match.NewEngine(knowledge.Default(), match.DefaultWeights(), observability.Nop())
	h := NewChatHandler(observability.Nop(), engine, nil, retriever)

	// The knowledge base knows nothing about this query, but the index holds
	// an exact-match chunk.
	rec := postChat(t, h, `{"message": "zzqq wwkk yyrr mmnn"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Legal Reference", resp.Category)
	assert.Contains(t, resp.Response, "Merchant Shipping")
	assert.Contains(t, resp.Response, "zzqq wwkk yyrr mmnn")
}

func TestChat_ServesCachedAnswer(t *testing.T) {
	answers := cache.NewAnswerCache(cache.NewMemoryClient(10), time.Hour)
	h := newChatHandler(answers)

	first := postChat(t, h, `{"message": "cheque bounce notice period"}`)
	require.Equal(t, http.StatusOK, first.Code)

	cached, ok := answers.Get(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "cheque bounce notice period")
	require.True(t, ok)

	second := postChat(t, h, `{"message": "cheque bounce notice period"}`)
	require.Equal(t, http.StatusOK, second.Code)

	var resp ChatResponseDTO
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, cached.Response, resp.Response)
	assert.Equal(t, cached.Category, resp.Category)
}
