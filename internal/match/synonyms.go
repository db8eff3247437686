package match

import "strings"

// ExpandedQuery carries the tokenized query in the forms the scorer needs.
type ExpandedQuery struct {
	Tokens   []string            // normalized tokens in order
	Counts   map[string]int      // token multiset counts
	Expanded map[string]struct{} // tokens plus triggered synonym sets
	Joined   string              // tokens joined with single spaces
}

// Empty reports whether the query normalized to nothing.
func (q *ExpandedQuery) Empty() bool {
	return len(q.Tokens) == 0
}

// Expander widens query tokens using a static synonym table. For every token
// that equals a canonical term or appears in its synonym list, the canonical
// term and the whole list join the expanded set.
type Expander struct {
	synonyms map[string][]string
}

// NewExpander creates an expander with the shipped legal-domain synonym table.
func NewExpander() *Expander {
	return &Expander{
		synonyms: map[string][]string{
			"divorce":    {"separation", "talaq", "annulment", "alimony"},
			"property":   {"land", "house", "plot", "flat", "estate"},
			"police":     {"cop", "thana", "constable"},
			"complaint":  {"fir", "report", "grievance", "petition"},
			"lawyer":     {"advocate", "counsel", "attorney", "vakil"},
			"money":      {"payment", "amount", "dues", "compensation"},
			"job":        {"employment", "work", "service", "naukri"},
			"salary":     {"wages", "pay", "remuneration"},
			"marriage":   {"wedding", "matrimony", "shaadi"},
			"child":      {"kid", "minor", "son", "daughter"},
			"cheat":      {"fraud", "scam", "deceive", "dupe"},
			"inherit":    {"succession", "heir", "inheritance"},
			"rent":       {"lease", "tenancy"},
			"fight":      {"dispute", "quarrel", "conflict"},
			"punishment": {"penalty", "sentence", "imprisonment", "jail"},
			"court":      {"tribunal", "forum", "judiciary"},
		},
	}
}

// Expand tokenizes the normalized query and returns the original tokens plus
// every synonym set any token triggers. Deterministic and side-effect-free.
func (e *Expander) Expand(normalized string) *ExpandedQuery {
	tokens := strings.Fields(normalized)

	q := &ExpandedQuery{
		Tokens:   tokens,
		Counts:   make(map[string]int, len(tokens)),
		Expanded: make(map[string]struct{}, len(tokens)*2),
		Joined:   strings.Join(tokens, " "),
	}

	for _, t := range tokens {
		q.Counts[t]++
		q.Expanded[t] = struct{}{}
	}

	for _, t := range tokens {
		for canonical, list := range e.synonyms {
			if t != canonical && !containsString(list, t) {
				continue
			}
			q.Expanded[canonical] = struct{}{}
			for _, s := range list {
				q.Expanded[s] = struct{}{}
			}
		}
	}

	return q
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
