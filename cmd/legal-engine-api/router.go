// Package main provides the API router setup.
package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nyaya-ai/legal-engine/cmd/legal-engine-api/handlers"
	"github.com/nyaya-ai/legal-engine/cmd/legal-engine-api/middleware"
	"github.com/nyaya-ai/legal-engine/internal/cache"
	"github.com/nyaya-ai/legal-engine/internal/config"
	"github.com/nyaya-ai/legal-engine/internal/embedding"
	"github.com/nyaya-ai/legal-engine/internal/knowledge"
	"github.com/nyaya-ai/legal-engine/internal/match"
	"github.com/nyaya-ai/legal-engine/internal/observability"
	"github.com/nyaya-ai/legal-engine/internal/rag"
)

// NewRouter wires the engine and its collaborators into the HTTP API.
func NewRouter(logger *observability.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	base := knowledge.Default()

	engine := match.NewEngine(base, cfg.Engine.Weights, logger)
	if cfg.Embedding.Enabled {
		engine.WithSemantic(newEmbeddingService(logger, cfg))
	}

	answers := cache.NewAnswerCache(newCacheClient(logger, cfg), cfg.Cache.TTL)

	retriever := newRetriever(logger, cfg)

	chatHandler := handlers.NewChatHandler(logger, engine, answers, retriever)
	adminHandler := handlers.NewAdminHandler(logger, base, retriever)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
	})
	r.Get("/health", adminHandler.Health)
	r.Get("/stats", adminHandler.Stats)
	r.Post("/initialize", adminHandler.Initialize)

	return r
}

// newCacheClient picks Redis when configured, falling back to process memory
// if the connection fails.
func newCacheClient(logger *observability.Logger, cfg *config.Config) cache.Client {
	if cfg.Cache.Driver == "redis" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err == nil {
			return client
		}
		logger.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries)
}

func newEmbeddingService(logger *observability.Logger, cfg *config.Config) *embedding.Service {
	return embedding.NewService(func() (embedding.Embedder, error) {
		return embedding.NewClient(embedding.Config{
			APIKey:    cfg.Embedding.APIKey,
			Model:     cfg.Embedding.Model,
			BaseURL:   cfg.Embedding.BaseURL,
			Dimension: cfg.Embedding.Dimension,
			Timeout:   cfg.Embedding.Timeout,
		})
	}, cfg.Embedding.Timeout, logger)
}

// newRetriever opens the document store for the optional RAG path. Any
// failure disables the path rather than blocking the API.
func newRetriever(logger *observability.Logger, cfg *config.Config) *rag.Retriever {
	if !cfg.Embedding.Enabled {
		return nil
	}

	store, err := rag.OpenStore(cfg.StoreDriver(), cfg.StoreDSN())
	if err != nil {
		logger.Warn().Err(err).Msg("document store unavailable, retrieval path disabled")
		return nil
	}
	if err := store.Migrate(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("store migration failed, retrieval path disabled")
		store.Close()
		return nil
	}

	embedder, err := embedding.NewClient(embedding.Config{
		APIKey:    cfg.Embedding.APIKey,
		Model:     cfg.Embedding.Model,
		BaseURL:   cfg.Embedding.BaseURL,
		Dimension: cfg.Embedding.Dimension,
		Timeout:   cfg.Embedding.Timeout,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("embedder unavailable, retrieval path disabled")
		store.Close()
		return nil
	}

	return rag.NewRetriever(store, rag.NewChunker(0, 0), embedder, logger)
}
