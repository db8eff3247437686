package match

import (
	"regexp"
	"strings"
	"unicode"
)

// devanagariThreshold is the fraction of alphabetic characters that must fall
// in the Devanagari block before a query is treated as Hindi.
const devanagariThreshold = 0.3

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// typoRule is one ordered substring replacement. First match wins; overlapping
// replacements are not guarded against.
type typoRule struct {
	from string
	to   string
}

// Normalizer cleans raw user text for scoring: punctuation stripping,
// lowercasing, a fixed typo table, and best-effort Hindi word substitution.
type Normalizer struct {
	typos []typoRule
	hindi map[string]string
}

// NewNormalizer creates a normalizer with the shipped typo and Hindi tables.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		typos: []typoRule{
			{"divorse", "divorce"},
			{"divorc e", "divorce"},
			{"propery", "property"},
			{"proprety", "property"},
			{"marrige", "marriage"},
			{"marraige", "marriage"},
			{"harrasment", "harassment"},
			{"harassement", "harassment"},
			{"compliant", "complaint"},
			{"cheque bound", "cheque bounce"},
			{"advocat ", "advocate "},
			{"goverment", "government"},
		},
		hindi: map[string]string{
			"तलाक":      "divorce",
			"संपत्ति":   "property",
			"जमीन":      "land",
			"पुलिस":     "police",
			"शिकायत":    "complaint",
			"कानून":     "law",
			"अधिकार":    "rights",
			"गिरफ्तारी": "arrest",
			"जमानत":     "bail",
			"विवाह":     "marriage",
			"शादी":      "marriage",
			"वसीयत":     "will",
			"किराया":    "rent",
			"मकान":      "house",
			"नौकरी":     "job",
			"वेतन":      "salary",
			"धोखाधड़ी":  "fraud",
			"अदालत":     "court",
			"वकील":      "lawyer",
			"कैसे":      "how to",
			"क्या":      "what",
			"मुझे":      "i",
			"मेरी":      "my",
			"मेरा":      "my",
		},
	}
}

// Normalize lowercases, strips punctuation, collapses whitespace, fixes known
// typos, and substitutes Hindi words when the raw text is mostly Devanagari.
// Always returns a string; never fails.
func (n *Normalizer) Normalize(raw string) string {
	s := nonWordRe.ReplaceAllString(raw, " ")
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")

	for _, t := range n.typos {
		s = strings.ReplaceAll(s, t.from, t.to)
	}

	if devanagariFraction(raw) > devanagariThreshold {
		s = n.translateWords(s)
		// A second pass catches nothing new; if the text is still mostly
		// Devanagari the translation was partial and we keep it as is.
	}

	return s
}

// translateWords substitutes each known Hindi word with its English
// approximation. Unknown words pass through unchanged.
func (n *Normalizer) translateWords(s string) string {
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if en, ok := n.hindi[w]; ok {
			out = append(out, en)
		} else {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// devanagariFraction returns the share of alphabetic runes that fall in the
// Devanagari Unicode block (U+0900 to U+097F).
func devanagariFraction(s string) float64 {
	letters, devanagari := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if r >= 0x0900 && r <= 0x097F {
			devanagari++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(devanagari) / float64(letters)
}
