package match

import (
	"fmt"
	"strings"
)

const (
	fallbackLines   = 50
	truncateAtChars = 1200
)

// sectionBounds controls when accumulation may stop at the next heading and
// where it must stop regardless. Some sections are legitimately long, so the
// caps vary by intent.
type sectionBounds struct {
	min int
	max int
}

var intentBounds = map[Intent]sectionBounds{
	IntentProcedure:          {20, 80},
	IntentSelfRepresentation: {20, 200},
	IntentPunishment:         {10, 60},
	IntentConsequence:        {10, 60},
	IntentRights:             {10, 60},
}

var defaultBounds = sectionBounds{8, 40}

// baseVocab is the per-intent heading trigger vocabulary; the detector's
// priority keywords are merged on top of it at extraction time.
var baseVocab = map[Intent][]string{
	IntentProcedure:          {"procedure", "process", "steps", "how to", "mutual consent"},
	IntentCost:               {"cost", "fee", "charges", "expenses"},
	IntentTime:               {"time", "duration", "timeline", "limitation", "how long"},
	IntentRights:             {"rights", "entitlement", "protection"},
	IntentPunishment:         {"punishment", "penalty", "imprisonment", "offence", "offense"},
	IntentDocuments:          {"documents", "required", "checklist", "papers"},
	IntentDefinition:         {"what is", "meaning", "definition", "overview"},
	IntentGrounds:            {"grounds", "reasons", "basis"},
	IntentConsequence:        {"consequence", "what happens", "effects"},
	IntentNonPayment:         {"non-payment", "unpaid", "recovery", "remedies"},
	IntentHarassment:         {"harassment", "protection", "remedies"},
	IntentRefund:             {"refund", "replacement", "remedies"},
	IntentFraud:              {"fraud", "cheating", "complaint"},
	IntentDefective:          {"defective", "warranty", "remedies"},
	IntentDelay:              {"delay", "timeline", "remedies"},
	IntentDispute:            {"dispute", "encroachment", "resolution", "remedies"},
	IntentSelfRepresentation: {"self-representation", "represent yourself", "without a lawyer", "party in person"},
}

const truncationSuffix = "\n\n---\n\nThis is a complex topic with many scenarios. " +
	"Please ask a more specific question, for example:\n" +
	"- \"How do I get a succession certificate?\"\n" +
	"- \"Who inherits property if there is no will?\"\n" +
	"- \"What is the daughter's share in ancestral property?\""

// SectionExtractor slices a matched entry's full markdown response down to
// the sub-section relevant to the detected intent.
type SectionExtractor struct{}

func NewSectionExtractor() *SectionExtractor {
	return &SectionExtractor{}
}

// Extract returns the answer sub-document for the matched entry. rawQuery is
// the user's original text, needed for the scenario-narrowing path; category
// is the matched entry's category.
func (x *SectionExtractor) Extract(doc string, intent Intent, priority []string, rawQuery, category string) string {
	if strings.TrimSpace(doc) == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")

	var body string
	if strings.Contains(strings.ToLower(category), "inheritance") {
		body = x.extractScenario(lines, rawQuery)
	} else if intent == IntentGeneral {
		body = headLines(lines, fallbackLines)
	} else {
		body = x.extractByHeading(lines, intent, priority)
	}

	out := body + citationsBlock(lines)
	return truncateIfUnnarrowed(out)
}

// extractByHeading is the shared state machine: keep the H1 title once, find
// the first heading whose text contains a trigger word, then accumulate until
// a non-matching heading arrives after the minimum or the cap is reached.
func (x *SectionExtractor) extractByHeading(lines []string, intent Intent, priority []string) string {
	vocab := append(append([]string{}, baseVocab[intent]...), priority...)
	bounds, ok := intentBounds[intent]
	if !ok {
		bounds = defaultBounds
	}

	var out []string
	var title string
	inSection := false
	kept := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if title == "" && strings.HasPrefix(trimmed, "# ") {
			title = line
			continue
		}

		isHeading := strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "### ")
		if isHeading {
			matches := containsAny(strings.ToLower(trimmed), vocab)
			switch {
			case !inSection && matches:
				inSection = true
			case inSection && !matches && kept >= bounds.min:
				return assemble(title, out)
			}
		}

		if inSection {
			out = append(out, line)
			kept++
			if kept >= bounds.max {
				return assemble(title, out)
			}
		}
	}

	if inSection {
		return assemble(title, out)
	}
	// Complete miss; never return empty for a non-empty document.
	return headLines(lines, fallbackLines)
}

func assemble(title string, body []string) string {
	if title == "" {
		return strings.Join(body, "\n")
	}
	return title + "\n\n" + strings.Join(body, "\n")
}

func headLines(lines []string, n int) string {
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// citationsBlock pulls the trailing citations out of the source document: the
// line containing "Legal Citations:" (or "Citations:") plus its next two
// non-blank lines, prefixed by a separator. Missing citations yield an empty
// block rather than an error.
func citationsBlock(lines []string) string {
	idx := -1
	for i, line := range lines {
		if strings.Contains(line, "Legal Citations:") || strings.Contains(line, "Citations:") {
			idx = i
		}
	}
	if idx < 0 {
		return ""
	}
	block := []string{lines[idx]}
	for i := idx + 1; i < len(lines) && len(block) < 3; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		block = append(block, lines[i])
	}
	return "\n\n---\n\n" + strings.Join(block, "\n")
}

// truncateIfUnnarrowed guards against the scenario logic failing to narrow a
// multi-scenario document: an overlong answer that still carries scenario
// markers is cut at 50 lines and replaced with a pointer to more specific
// questions.
func truncateIfUnnarrowed(text string) string {
	if len(text) <= truncateAtChars || !strings.Contains(text, "SCENARIO") {
		return text
	}
	lines := strings.Split(text, "\n")
	return headLines(lines, fallbackLines) + truncationSuffix
}

// scenarioTrigger maps query phrases to the scenario number that answers
// them. Evaluated in order against the lowercased original query.
type scenarioTrigger struct {
	phrases []string
	number  int
}

var scenarioTriggers = []scenarioTrigger{
	{[]string{"succession certificate"}, 1},
	{[]string{"without will", "no will", "intestate"}, 2},
	{[]string{"with will", "left a will", "made a will", "probate"}, 3},
	{[]string{"daughter", "daughters"}, 4},
	{[]string{"widow", "wife share", "husband died"}, 5},
	{[]string{"ancestral"}, 6},
	{[]string{"self-acquired", "self acquired"}, 7},
	{[]string{"legal heir certificate"}, 8},
	{[]string{"nominee", "nomination"}, 9},
	{[]string{"mutation", "transfer property after death"}, 10},
	{[]string{"agricultural", "farm land"}, 11},
	{[]string{"muslim", "islamic"}, 12},
}

// extractScenario handles the one entry organized as enumerated scenarios.
// A scenario trigger in the original query selects exactly one SCENARIO
// block; otherwise the overview plus a menu of available scenarios is
// returned instead of the full dump.
func (x *SectionExtractor) extractScenario(lines []string, rawQuery string) string {
	q := strings.ToLower(rawQuery)
	for _, t := range scenarioTriggers {
		if containsAny(q, t.phrases) {
			if block := scenarioBlock(lines, t.number); block != "" {
				return block
			}
		}
	}
	return scenarioMenu(lines)
}

func scenarioBlock(lines []string, number int) string {
	marker := fmt.Sprintf("SCENARIO %d", number)
	var out []string
	var title string
	in := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if title == "" && strings.HasPrefix(trimmed, "# ") {
			title = line
			continue
		}
		if strings.HasPrefix(trimmed, "## ") {
			if in {
				break
			}
			if strings.Contains(trimmed, marker+":") || strings.HasSuffix(scenarioHeadingID(trimmed), marker) ||
				strings.Contains(trimmed, marker+" ") || strings.Contains(trimmed, marker+"*") {
				in = true
			}
		}
		if in {
			out = append(out, line)
		}
	}
	if !in {
		return ""
	}
	return assemble(title, out)
}

// scenarioHeadingID strips markdown decoration so "## 🎯 **SCENARIO 2**"
// compares as "SCENARIO 2".
func scenarioHeadingID(heading string) string {
	s := strings.TrimPrefix(strings.TrimSpace(heading), "##")
	s = strings.NewReplacer("*", "", "🎯", "", ":", "").Replace(s)
	return strings.TrimSpace(s)
}

// scenarioMenu returns the introductory lines before the first scenario plus
// a synthesized list of available scenario titles.
func scenarioMenu(lines []string) string {
	var intro []string
	var titles []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		isScenario := strings.HasPrefix(trimmed, "## ") && strings.Contains(trimmed, "SCENARIO")
		if isScenario {
			// Rendered as "Scenario" so the menu itself never reads as an
			// unnarrowed dump.
			label := strings.Replace(scenarioHeadingID(trimmed), "SCENARIO", "Scenario", 1)
			titles = append(titles, "- "+label)
			continue
		}
		if len(titles) == 0 {
			intro = append(intro, line)
		}
	}
	if len(intro) > 15 {
		intro = intro[:15]
	}
	menu := "\n\n**I can help with these specific situations:**\n" + strings.Join(titles, "\n") +
		"\n\nPlease ask about the situation that applies to you."
	return strings.Join(intro, "\n") + menu
}
