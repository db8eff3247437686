// Package knowledge holds the static legal knowledge base: manually curated
// entries pairing keyword tables with canned markdown answers and citations.
package knowledge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// GreetingCategory is the category of the universal fallback entry. Exactly one
// entry in a valid base carries it.
const GreetingCategory = "Greeting"

// Validation errors.
var (
	ErrNoEntries        = errors.New("knowledge base has no entries")
	ErrNoGreeting       = errors.New("knowledge base has no Greeting entry")
	ErrMultipleGreeting = errors.New("knowledge base has more than one Greeting entry")
)

// Entry is one static knowledge record. Entries are immutable after load; the
// engine only ever borrows references to them.
type Entry struct {
	Keywords  []string
	Category  string
	Response  string
	Citations []string
}

// Base is the validated, read-only knowledge base. Safe for concurrent use.
type Base struct {
	entries  []Entry
	greeting *Entry
}

// NewBase validates the entries and builds a Base. Malformed entries fail here,
// at startup, so a request never sees a half-valid entry.
func NewBase(entries []Entry) (*Base, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	b := &Base{entries: entries}

	for i := range entries {
		e := &entries[i]
		if e.Category == "" {
			return nil, fmt.Errorf("entry %d: empty category", i)
		}
		if strings.TrimSpace(e.Response) == "" {
			return nil, fmt.Errorf("entry %d (%s): empty response", i, e.Category)
		}
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("entry %d (%s): no keywords", i, e.Category)
		}
		for _, k := range e.Keywords {
			if k != strings.ToLower(k) {
				return nil, fmt.Errorf("entry %d (%s): keyword %q is not lowercase", i, e.Category, k)
			}
		}
		if e.Category == GreetingCategory {
			if b.greeting != nil {
				return nil, ErrMultipleGreeting
			}
			b.greeting = e
		}
	}

	if b.greeting == nil {
		return nil, ErrNoGreeting
	}

	return b, nil
}

// Default builds the base from the shipped entries. Panics on a malformed data
// table, which is a programming error caught at process start.
func Default() *Base {
	b, err := NewBase(entries())
	if err != nil {
		panic(fmt.Sprintf("knowledge: invalid shipped data: %v", err))
	}
	return b
}

// Entries returns the ordered entry list. Callers must not mutate it.
func (b *Base) Entries() []Entry {
	return b.entries
}

// Greeting returns the designated fallback entry.
func (b *Base) Greeting() *Entry {
	return b.greeting
}

// Len returns the number of entries.
func (b *Base) Len() int {
	return len(b.entries)
}

// Stats summarizes the base for the stats and initialize endpoints.
type Stats struct {
	TotalEntries  int            `json:"total_entries"`
	TotalKeywords int            `json:"total_keywords"`
	Categories    map[string]int `json:"categories"`
}

// Stats computes summary counts over the base.
func (b *Base) Stats() Stats {
	s := Stats{Categories: make(map[string]int)}
	for i := range b.entries {
		s.TotalEntries++
		s.TotalKeywords += len(b.entries[i].Keywords)
		s.Categories[b.entries[i].Category]++
	}
	return s
}

// CategoryNames returns the sorted distinct category list.
func (b *Base) CategoryNames() []string {
	seen := make(map[string]bool)
	var names []string
	for i := range b.entries {
		if !seen[b.entries[i].Category] {
			seen[b.entries[i].Category] = true
			names = append(names, b.entries[i].Category)
		}
	}
	sort.Strings(names)
	return names
}
