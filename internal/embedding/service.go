package embedding

import (
	"context"
	"sync"
	"time"

	"github.com/nyaya-ai/legal-engine/internal/observability"
)

// maxCachedVectors bounds the in-memory vector cache. Document texts are a
// small fixed set; the bound exists so query texts cannot grow it forever.
const maxCachedVectors = 1024

// Service adapts an Embedder into the engine's similarity function. The
// underlying embedder is initialized lazily on first use so processes that
// never need the semantic channel pay nothing, and every call carries its own
// timeout so a hung model can never block answer delivery.
type Service struct {
	newEmbedder func() (Embedder, error)
	timeout     time.Duration
	log         *observability.Logger

	initOnce sync.Once
	embedder Embedder
	initErr  error

	mu   sync.Mutex
	vecs map[string][]float32
}

// NewService builds a Service around a lazily constructed embedder.
func NewService(newEmbedder func() (Embedder, error), timeout time.Duration, log *observability.Logger) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = observability.Nop()
	}
	return &Service{
		newEmbedder: newEmbedder,
		timeout:     timeout,
		log:         log,
		vecs:        make(map[string][]float32),
	}
}

// Warm embeds the given documents ahead of time so the first query only pays
// for its own embedding. Errors are reported, not fatal.
func (s *Service) Warm(ctx context.Context, texts []string) error {
	if err := s.init(); err != nil {
		return err
	}
	for _, text := range texts {
		if _, err := s.vector(ctx, text); err != nil {
			return err
		}
	}
	return nil
}

// Similarity implements the engine's semantic channel, returning cosine
// similarity in [0, 1] between the query and the document text.
func (s *Service) Similarity(ctx context.Context, query, text string) (float64, error) {
	if err := s.init(); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	qv, err := s.vector(ctx, query)
	if err != nil {
		return 0, err
	}
	tv, err := s.vector(ctx, text)
	if err != nil {
		return 0, err
	}

	sim := Cosine(qv, tv)
	if sim < 0 {
		sim = 0
	}
	return sim, nil
}

func (s *Service) init() error {
	s.initOnce.Do(func() {
		s.embedder, s.initErr = s.newEmbedder()
		if s.initErr != nil {
			s.log.Warn().Err(s.initErr).Msg("embedder initialization failed")
			return
		}
		s.log.Info().Str("model", s.embedder.Model()).Msg("embedder initialized")
	})
	return s.initErr
}

// vector returns the cached embedding for text, computing it on a miss.
func (s *Service) vector(ctx context.Context, text string) ([]float32, error) {
	s.mu.Lock()
	if v, ok := s.vecs[text]; ok {
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	v, err := s.embedder.EmbedSingle(ctx, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if len(s.vecs) >= maxCachedVectors {
		s.vecs = make(map[string][]float32)
	}
	s.vecs[text] = v
	s.mu.Unlock()
	return v, nil
}
