// Package match implements the query-to-answer matching engine: normalization,
// synonym expansion, entity extraction, scoring, intent detection, and section
// extraction over the static knowledge base.
package match

// Weights holds every tunable scoring constant used by the engine. The defaults
// were tuned against the keyword tables shipped in internal/knowledge; changing
// either side without re-tuning the other degrades ranking quality.
type Weights struct {
	// Step A: base lexical score.
	KeywordSubstring float64 `yaml:"keyword_substring"` // keyword phrase occurs in joined query tokens
	KeywordWord      float64 `yaml:"keyword_word"`      // per keyword word found in the query, times capped count
	KeywordWordCap   int     `yaml:"keyword_word_cap"`  // repetition cap for KeywordWord
	FuzzyThreshold   float64 `yaml:"fuzzy_threshold"`   // minimum sequence ratio for the typo channel
	FuzzyScale       float64 `yaml:"fuzzy_scale"`       // bonus = floor(ratio * FuzzyScale)

	// Step B: context multipliers live in the context rule table (contexts.go);
	// the table's boost and suppression factors are data, not config.

	// Step C: supplementary boosts.
	CategoryWord       float64 `yaml:"category_word"`        // per category content word in the expanded query
	LongKeywordLiteral float64 `yaml:"long_keyword_literal"` // keyword longer than LongKeywordMinLen found verbatim
	LongKeywordMinLen  int     `yaml:"long_keyword_min_len"`
	EarlyPosition      float64 `yaml:"early_position"` // keyword overlaps a token from the query's first half

	// Step D: entity boosts, applied to the hybrid score.
	ActBoost     float64 `yaml:"act_boost"`
	SectionBoost float64 `yaml:"section_boost"` // sections, articles, IPC and CrPC refs
	CaseBoost    float64 `yaml:"case_boost"`

	// Hybrid combination and acceptance threshold.
	ContextualShare float64 `yaml:"contextual_share"`
	SemanticShare   float64 `yaml:"semantic_share"`
	MinScore        float64 `yaml:"min_score"` // below this the Greeting entry is returned
}

// DefaultWeights returns the shipped tuning.
func DefaultWeights() Weights {
	return Weights{
		KeywordSubstring:   15,
		KeywordWord:        10,
		KeywordWordCap:     2,
		FuzzyThreshold:     0.8,
		FuzzyScale:         8,
		CategoryWord:       15,
		LongKeywordLiteral: 30,
		LongKeywordMinLen:  5,
		EarlyPosition:      12,
		ActBoost:           25,
		SectionBoost:       20,
		CaseBoost:          30,
		ContextualShare:    0.7,
		SemanticShare:      0.3,
		MinScore:           10,
	}
}
