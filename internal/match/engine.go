package match

import (
	"context"
	"strings"
	"sync"

	"github.com/nyaya-ai/legal-engine/internal/knowledge"
	"github.com/nyaya-ai/legal-engine/internal/observability"
)

// SemanticScorer is the optional embedding channel. Similarity returns a
// value in [0, 1]; any error or timeout degrades that request to
// contextual-only scoring.
type SemanticScorer interface {
	Similarity(ctx context.Context, query, text string) (float64, error)
}

// Result is the engine's answer to one query.
type Result struct {
	Response   string
	Category   string
	Citations  []string
	Intent     Intent
	Score      float64
	Confidence float64
}

// Engine wires the normalizer, expander, scorer, intent detector and section
// extractor over an immutable knowledge base. It holds no per-request state,
// so a single Engine serves concurrent callers without locking.
type Engine struct {
	base      *knowledge.Base
	norm      *Normalizer
	expander  *Expander
	scorer    *Scorer
	extractor *SectionExtractor
	w         Weights

	semantic SemanticScorer
	semWarn  sync.Once

	log *observability.Logger
}

func NewEngine(base *knowledge.Base, w Weights, log *observability.Logger) *Engine {
	if log == nil {
		log = observability.Nop()
	}
	return &Engine{
		base:      base,
		norm:      NewNormalizer(),
		expander:  NewExpander(),
		scorer:    NewScorer(w),
		extractor: NewSectionExtractor(),
		w:         w,
		log:       log,
	}
}

// WithSemantic attaches the embedding channel. Passing nil leaves the engine
// contextual-only.
func (e *Engine) WithSemantic(s SemanticScorer) *Engine {
	e.semantic = s
	return e
}

// Answer runs the full pipeline for one raw query. It never returns an
// error: queries with no confident match get the Greeting entry.
func (e *Engine) Answer(ctx context.Context, raw string) Result {
	normalized := e.norm.Normalize(raw)
	expanded := e.expander.Expand(normalized)
	entities := ExtractEntities(raw)
	rawLower := strings.ToLower(raw)

	best, bestScore := e.pick(ctx, expanded, rawLower, raw, entities)

	fallback := false
	if best == nil || bestScore < e.w.MinScore {
		best = e.base.Greeting()
		fallback = true
	}

	intent, priority := Detect(normalized)
	if fallback {
		intent, priority = IntentGeneral, nil
	}
	section := e.extractor.Extract(best.Response, intent, priority, raw, best.Category)

	e.log.Debug().
		Str("category", best.Category).
		Str("intent", string(intent)).
		Float64("score", bestScore).
		Bool("fallback", fallback).
		Msg("query answered")

	return Result{
		Response:   section,
		Category:   best.Category,
		Citations:  best.Citations,
		Intent:     intent,
		Score:      bestScore,
		Confidence: confidence(bestScore, fallback),
	}
}

// pick scans every entry, blending the contextual score with the optional
// semantic channel and applying the entity boost on the blended value.
func (e *Engine) pick(ctx context.Context, q *ExpandedQuery, rawLower, raw string, ents EntitySet) (*knowledge.Entry, float64) {
	var best *knowledge.Entry
	bestScore := -1.0

	entries := e.base.Entries()
	for i := range entries {
		entry := &entries[i]
		contextual := e.scorer.Score(q, rawLower, entry)

		hybrid := e.w.ContextualShare * contextual
		if sem, ok := e.semanticScore(ctx, raw, entry); ok {
			hybrid += e.w.SemanticShare * sem
		}
		hybrid += e.scorer.EntityBoost(ents, entry.Response)

		if hybrid > bestScore {
			best = entry
			bestScore = hybrid
		}
	}
	return best, bestScore
}

// semanticScore returns the embedding similarity scaled to 0..100. A failed
// or absent channel reports once and contributes nothing.
func (e *Engine) semanticScore(ctx context.Context, raw string, entry *knowledge.Entry) (float64, bool) {
	if e.semantic == nil || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	sim, err := e.semantic.Similarity(ctx, raw, entry.Response)
	if err != nil {
		e.semWarn.Do(func() {
			e.log.Warn().Err(err).Msg("semantic channel unavailable, scoring contextual-only")
		})
		return 0, false
	}
	return sim * 100, true
}

// confidence maps the unbounded hybrid score onto 0..1 for the API surface.
// Fallback answers carry a fixed low confidence.
func confidence(score float64, fallback bool) float64 {
	if fallback {
		return 0.3
	}
	c := score / 100
	if c > 1 {
		c = 1
	}
	if c < 0 {
		c = 0
	}
	return c
}
