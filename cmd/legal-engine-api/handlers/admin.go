package handlers

import (
	"net/http"

	"github.com/nyaya-ai/legal-engine/internal/knowledge"
	"github.com/nyaya-ai/legal-engine/internal/observability"
	"github.com/nyaya-ai/legal-engine/internal/rag"
)

// AdminHandler serves health, stats, and initialization endpoints.
type AdminHandler struct {
	logger    *observability.Logger
	base      *knowledge.Base
	retriever *rag.Retriever // nil when the RAG path is disabled
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(logger *observability.Logger, base *knowledge.Base, retriever *rag.Retriever) *AdminHandler {
	return &AdminHandler{logger: logger, base: base, retriever: retriever}
}

// HealthResponseDTO is the health check response.
type HealthResponseDTO struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	VectorstoreReady bool   `json:"vectorstore_loaded"`
	DocumentsCount   int    `json:"documents_count"`
}

// StatsResponseDTO is the stats response.
type StatsResponseDTO struct {
	Categories []string        `json:"categories"`
	Totals     knowledge.Stats `json:"totals"`
	Method     string          `json:"method"`
}

// InitStatsDTO summarizes the loaded knowledge after initialization.
type InitStatsDTO struct {
	Loaded     bool   `json:"loaded"`
	Count      int    `json:"count"`
	Categories int    `json:"categories"`
	Method     string `json:"method"`
}

// InitializeResponseDTO is the initialize response.
type InitializeResponseDTO struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Stats   InitStatsDTO `json:"stats"`
}

// Health handles GET /health. The document count covers scraped documents
// when the RAG path is active, otherwise knowledge entries.
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	count := h.base.Len()
	if h.retriever != nil {
		if n, err := h.retriever.DocumentCount(r.Context()); err == nil {
			count = n
		}
	}
	writeJSON(w, http.StatusOK, HealthResponseDTO{
		Status:           "healthy",
		Message:          "legal engine API is running",
		VectorstoreReady: h.retriever != nil,
		DocumentsCount:   count,
	})
}

// Stats handles GET /stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponseDTO{
		Categories: h.base.CategoryNames(),
		Totals:     h.base.Stats(),
		Method:     h.method(),
	})
}

// Initialize handles POST /initialize. When the RAG path is active it
// rebuilds the vector index from the document store.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if h.retriever != nil {
		if err := h.retriever.Reindex(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("reindex failed")
			writeError(w, http.StatusInternalServerError, "initialization failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, InitializeResponseDTO{
		Status:  "initialized",
		Message: "knowledge base ready",
		Stats: InitStatsDTO{
			Loaded:     true,
			Count:      h.base.Len(),
			Categories: len(h.base.CategoryNames()),
			Method:     h.method(),
		},
	})
}

func (h *AdminHandler) method() string {
	if h.retriever != nil {
		return "hybrid"
	}
	return "contextual"
}
