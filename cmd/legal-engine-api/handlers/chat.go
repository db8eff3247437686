// Package handlers provides HTTP handlers for the legal engine API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nyaya-ai/legal-engine/internal/cache"
	"github.com/nyaya-ai/legal-engine/internal/knowledge"
	"github.com/nyaya-ai/legal-engine/internal/match"
	"github.com/nyaya-ai/legal-engine/internal/observability"
	"github.com/nyaya-ai/legal-engine/internal/rag"
)

const sourceLabel = "Official Indian Legal Source"

// ragMinScore is the cosine similarity a retrieved chunk must reach before it
// may replace the Greeting fallback.
const ragMinScore = 0.55

// ChatHandler answers user questions through the matching engine.
type ChatHandler struct {
	logger    *observability.Logger
	engine    *match.Engine
	answers   *cache.AnswerCache
	retriever *rag.Retriever // nil disables the retrieval fallback
}

// NewChatHandler creates a chat handler. answers may be nil to disable
// caching, retriever may be nil to disable the retrieval fallback.
func NewChatHandler(logger *observability.Logger, engine *match.Engine, answers *cache.AnswerCache, retriever *rag.Retriever) *ChatHandler {
	return &ChatHandler{logger: logger, engine: engine, answers: answers, retriever: retriever}
}

// ChatRequestDTO is the chat API request body.
type ChatRequestDTO struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponseDTO is the chat API response body.
type ChatResponseDTO struct {
	Response       string      `json:"response"`
	ConversationID string      `json:"conversation_id"`
	Category       string      `json:"category"`
	Sources        []SourceDTO `json:"sources"`
	Confidence     float64     `json:"confidence"`
}

// SourceDTO is one citation backing the answer.
type SourceDTO struct {
	Title     string  `json:"title"`
	Source    string  `json:"source"`
	Relevance float64 `json:"relevance"`
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx := r.Context()

	res, cached := h.cachedAnswer(ctx, req.Message)
	if !cached {
		res = h.engine.Answer(ctx, req.Message)
		if res.Category == knowledge.GreetingCategory {
			if out, ok := h.retrieved(ctx, req.Message); ok {
				res = out
			}
		}
		if h.answers != nil {
			h.answers.Put(ctx, req.Message, res)
		}
	}

	convID := req.ConversationID
	if convID == "" {
		convID = newConversationID()
	}

	sources := make([]SourceDTO, 0, len(res.Citations))
	for _, c := range res.Citations {
		sources = append(sources, SourceDTO{Title: c, Source: sourceLabel, Relevance: 1.0})
	}

	h.logger.Info().
		Str("conversation_id", convID).
		Str("category", res.Category).
		Bool("cached", cached).
		Msg("chat answered")

	writeJSON(w, http.StatusOK, ChatResponseDTO{
		Response:       res.Response,
		ConversationID: convID,
		Category:       res.Category,
		Sources:        sources,
		Confidence:     res.Confidence,
	})
}

func (h *ChatHandler) cachedAnswer(ctx context.Context, query string) (match.Result, bool) {
	if h.answers == nil {
		return match.Result{}, false
	}
	return h.answers.Get(ctx, query)
}

// retrieved falls back to the scraped-document index when the knowledge base
// had nothing confident to say. Retrieval errors keep the Greeting answer.
func (h *ChatHandler) retrieved(ctx context.Context, query string) (match.Result, bool) {
	if h.retriever == nil {
		return match.Result{}, false
	}
	hits, err := h.retriever.Retrieve(ctx, query, 1)
	if err != nil {
		h.logger.Warn().Err(err).Msg("retrieval fallback failed")
		return match.Result{}, false
	}
	if len(hits) == 0 || hits[0].Score < ragMinScore {
		return match.Result{}, false
	}

	chunk := hits[0].Chunk
	return match.Result{
		Response:   "## " + chunk.Title + "\n\n" + chunk.Text,
		Category:   "Legal Reference",
		Citations:  []string{chunk.Title},
		Intent:     match.IntentGeneral,
		Score:      hits[0].Score * 100,
		Confidence: hits[0].Score,
	}, true
}

func newConversationID() string {
	return "conv_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
