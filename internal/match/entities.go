package match

import (
	"regexp"
	"strings"
)

// EntitySet holds legal citation entities extracted from a query. The
// extractor is intentionally permissive: its output is only a scoring hint and
// never filters candidates, so false positives degrade ranking quality at
// worst.
type EntitySet struct {
	Acts         []string
	Sections     []string
	Articles     []string
	IPCSections  []string
	CRPCSections []string
	Cases        []string
}

// minActLen filters short capitalized fragments that happen to end in "Act".
const minActLen = 10

var (
	actRe     = regexp.MustCompile(`\b((?:[A-Z][a-z]+[ ,]+)+Act(?:,?\s+\d{4})?)`)
	sectionRe = regexp.MustCompile(`(?i)\bsection\s+(\d+[A-Z]?)`)
	articleRe = regexp.MustCompile(`(?i)\barticle\s+(\d+[A-Z]?)`)
	// Both orderings: "Section 420 IPC" and "IPC Section 420".
	codeSectionRe = regexp.MustCompile(`(?i)\bsection\s+(\d+[A-Z]?)\s+(?:of\s+(?:the\s+)?)?(ipc|crpc)\b`)
	codeFirstRe   = regexp.MustCompile(`(?i)\b(ipc|crpc)\s+section\s+(\d+[A-Z]?)`)
	bareCodeRe    = regexp.MustCompile(`(?i)\b(\d+[A-Z]?)\s+(ipc|crpc)\b`)
	caseRe        = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s+(?:vs?\.?|versus)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`)
)

// ExtractEntities pulls act names, section and article numbers, IPC/CrPC
// section refs, and case names from the raw query text.
func ExtractEntities(raw string) EntitySet {
	var e EntitySet

	for _, m := range actRe.FindAllStringSubmatch(raw, -1) {
		act := strings.TrimSpace(m[1])
		if len(act) > minActLen {
			e.Acts = appendUnique(e.Acts, act)
		}
	}

	for _, m := range sectionRe.FindAllStringSubmatch(raw, -1) {
		e.Sections = appendUnique(e.Sections, strings.ToUpper(m[1]))
	}

	for _, m := range articleRe.FindAllStringSubmatch(raw, -1) {
		e.Articles = appendUnique(e.Articles, strings.ToUpper(m[1]))
	}

	addCode := func(id, code string) {
		id = strings.ToUpper(id)
		if strings.EqualFold(code, "ipc") {
			e.IPCSections = appendUnique(e.IPCSections, id)
		} else {
			e.CRPCSections = appendUnique(e.CRPCSections, id)
		}
	}
	for _, m := range codeSectionRe.FindAllStringSubmatch(raw, -1) {
		addCode(m[1], m[2])
	}
	for _, m := range codeFirstRe.FindAllStringSubmatch(raw, -1) {
		addCode(m[2], m[1])
	}
	for _, m := range bareCodeRe.FindAllStringSubmatch(raw, -1) {
		addCode(m[1], m[2])
	}

	for _, m := range caseRe.FindAllStringSubmatch(raw, -1) {
		e.Cases = appendUnique(e.Cases, m[1]+" v. "+m[2])
	}

	return e
}

// IsEmpty reports whether nothing was extracted.
func (e EntitySet) IsEmpty() bool {
	return len(e.Acts) == 0 && len(e.Sections) == 0 && len(e.Articles) == 0 &&
		len(e.IPCSections) == 0 && len(e.CRPCSections) == 0 && len(e.Cases) == 0
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
