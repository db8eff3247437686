package match

import (
	"math"
	"strings"

	"github.com/nyaya-ai/legal-engine/internal/knowledge"
)

// Scorer turns a normalized, expanded query and a knowledge entry into a
// contextual relevance score. Scores are additive bonuses, so they have no
// fixed upper bound; the engine compares them across entries and against the
// configured minimum.
type Scorer struct {
	w Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{w: w}
}

// Score computes the contextual score for one entry. rawLower is the
// lowercased original query text, used for literal phrase checks that must
// not see typo correction or translation.
func (s *Scorer) Score(q *ExpandedQuery, rawLower string, e *knowledge.Entry) float64 {
	if q.Empty() {
		return 0
	}

	base := s.keywordScore(q, e) + s.precisionBonus(q, rawLower, e)
	return base * contextMultiplier(e.Category, activeContexts(rawLower))
}

// keywordScore is the raw overlap channel: whole-keyword substring hits,
// per-word frequency hits capped per word, and fuzzy hits for near-miss
// tokens the typo table does not cover.
func (s *Scorer) keywordScore(q *ExpandedQuery, e *knowledge.Entry) float64 {
	score := 0.0
	for _, kw := range e.Keywords {
		if strings.Contains(q.Joined, kw) {
			score += s.w.KeywordSubstring
		}
		for _, word := range strings.Fields(kw) {
			if n, ok := q.Counts[word]; ok {
				if n > s.w.KeywordWordCap {
					n = s.w.KeywordWordCap
				}
				score += s.w.KeywordWord * float64(n)
			} else if _, ok := q.Expanded[word]; ok {
				// Synonym-only hit, counted once.
				score += s.w.KeywordWord
			} else {
				score += s.fuzzyBonus(q, word)
			}
		}
	}
	return score
}

func (s *Scorer) fuzzyBonus(q *ExpandedQuery, word string) float64 {
	if len(word) <= 3 {
		return 0
	}
	best := 0.0
	for _, tok := range q.Tokens {
		if len(tok) <= 3 {
			continue
		}
		if r := ratio(tok, word); r > best {
			best = r
		}
	}
	if best > s.w.FuzzyThreshold {
		return math.Floor(best * s.w.FuzzyScale)
	}
	return 0
}

// precisionBonus rewards signals that are cheap to fake individually but
// rarely co-occur by accident: category vocabulary overlap, a long keyword
// appearing verbatim in the raw query, and keyword words showing up in the
// first half of the query where users put their actual topic.
func (s *Scorer) precisionBonus(q *ExpandedQuery, rawLower string, e *knowledge.Entry) float64 {
	score := 0.0

	for _, word := range strings.Fields(strings.ToLower(e.Category)) {
		if _, ok := q.Expanded[word]; ok {
			score += s.w.CategoryWord
			break
		}
	}

	for _, kw := range e.Keywords {
		if len(kw) > s.w.LongKeywordMinLen && strings.Contains(rawLower, kw) {
			score += s.w.LongKeywordLiteral
			break
		}
	}

	half := len(q.Tokens) / 2
	if half == 0 {
		half = 1
	}
	early := q.Tokens[:half]
positionLoop:
	for _, kw := range e.Keywords {
		for _, word := range strings.Fields(kw) {
			for _, tok := range early {
				if tok == word {
					score += s.w.EarlyPosition
					break positionLoop
				}
			}
		}
	}

	return score
}

// EntityBoost rewards entries whose response text actually covers the legal
// entities named in the query. It applies after hybrid blending, so a cited
// section can pull a borderline entry over the line but cannot be diluted by
// the semantic channel.
func (s *Scorer) EntityBoost(ents EntitySet, response string) float64 {
	if ents.IsEmpty() {
		return 0
	}
	respLower := strings.ToLower(response)
	boost := 0.0

	for _, act := range ents.Acts {
		if strings.Contains(respLower, strings.ToLower(act)) {
			boost += s.w.ActBoost
		}
	}
	for _, sec := range ents.Sections {
		if strings.Contains(respLower, "section "+strings.ToLower(sec)) {
			boost += s.w.SectionBoost
		}
	}
	for _, art := range ents.Articles {
		if strings.Contains(respLower, "article "+strings.ToLower(art)) {
			boost += s.w.SectionBoost
		}
	}
	for _, sec := range ents.IPCSections {
		id := strings.ToLower(sec)
		if strings.Contains(respLower, id+" ipc") || strings.Contains(respLower, "section "+id) {
			boost += s.w.SectionBoost
		}
	}
	for _, sec := range ents.CRPCSections {
		id := strings.ToLower(sec)
		if strings.Contains(respLower, id+" crpc") || strings.Contains(respLower, "section "+id) {
			boost += s.w.SectionBoost
		}
	}
	for _, c := range ents.Cases {
		if strings.Contains(respLower, strings.ToLower(c)) {
			boost += s.w.CaseBoost
		}
	}
	return boost
}
