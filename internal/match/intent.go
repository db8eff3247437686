package match

import "strings"

// Intent is a coarse classification of what shape of answer the user wants,
// orthogonal to which topic matched.
type Intent string

const (
	IntentProcedure          Intent = "procedure"
	IntentCost               Intent = "cost"
	IntentTime               Intent = "time"
	IntentRights             Intent = "rights"
	IntentPunishment         Intent = "punishment"
	IntentDocuments          Intent = "documents"
	IntentDefinition         Intent = "definition"
	IntentGrounds            Intent = "grounds"
	IntentConsequence        Intent = "consequence"
	IntentNonPayment         Intent = "non_payment"
	IntentHarassment         Intent = "harassment"
	IntentRefund             Intent = "refund"
	IntentFraud              Intent = "fraud"
	IntentDefective          Intent = "defective"
	IntentDelay              Intent = "delay"
	IntentDispute            Intent = "dispute"
	IntentSelfRepresentation Intent = "self_representation"
	IntentInheritance        Intent = "inheritance"
	IntentGeneral            Intent = "general"
)

// intentRule is one branch of the detection cascade. Rules are evaluated in
// order and the first rule with a trigger substring in the query wins, so the
// table ordering encodes priority.
type intentRule struct {
	intent   Intent
	triggers []string
	priority []string // heading substrings handed to the section extractor
}

var intentRules = []intentRule{
	{IntentSelfRepresentation, []string{
		"without lawyer", "without a lawyer", "myself in court", "represent myself",
		"argue my own", "party in person", "own case",
	}, []string{"self-representation", "represent yourself", "without a lawyer", "party in person"}},

	// "what will happen" phrasing branches below via detectConsequence.

	{IntentDispute, []string{
		"dispute", "encroach", "boundary", "illegal possession", "grabbed my",
		"occupied my",
	}, []string{"dispute", "encroachment", "resolution", "remedies"}},

	{IntentInheritance, []string{
		"inherit", "succession", "legal heir", "ancestral", "died without will",
		"intestate", "nominee",
	}, []string{"scenario", "succession", "inheritance"}},

	{IntentNonPayment, []string{
		"not paying", "not paid", "refuses to pay", "unpaid", "withheld",
		"salary due", "hasn't paid", "has not paid",
	}, []string{"non-payment", "unpaid", "recovery", "remedies"}},

	{IntentHarassment, []string{
		"harass", "threaten", "intimidat", "torture", "blackmail",
	}, []string{"harassment", "protection", "remedies", "rights"}},

	{IntentRefund, []string{
		"refund", "money back", "return the product", "replacement",
	}, []string{"refund", "replacement", "remedies"}},

	{IntentFraud, []string{
		"fraud", "scam", "cheated", "duped", "fake",
	}, []string{"fraud", "cheating", "remedies", "complaint"}},

	{IntentDefective, []string{
		"defective", "damaged product", "not working", "faulty", "broken product",
	}, []string{"defective", "warranty", "remedies"}},

	{IntentDelay, []string{
		"delay", "taking too long", "pending for", "no progress",
	}, []string{"delay", "timeline", "remedies"}},

	{IntentProcedure, []string{
		"how to", "how do i", "how can i", "procedure", "process", "steps",
		"file a", "file an", "apply for",
	}, []string{"procedure", "process", "steps", "how to", "mutual consent"}},

	{IntentCost, []string{
		"cost", "fee", "fees", "charges", "how much", "expensive", "price",
	}, []string{"cost", "fees", "charges", "expenses"}},

	{IntentTime, []string{
		"how long", "time limit", "deadline", "duration", "within how many",
		"limitation period",
	}, []string{"time", "duration", "timeline", "limitation"}},

	{IntentRights, []string{
		"my rights", "what rights", "am i entitled", "entitlement", "fundamental right",
	}, []string{"rights", "entitlements", "protection"}},

	{IntentPunishment, []string{
		"punishment", "penalty", "jail", "imprisonment", "sentence", "fine for",
		"beat", "assault", "slapped", "hit my",
	}, []string{"punishment", "penalty", "imprisonment", "offence"}},

	{IntentDocuments, []string{
		"documents", "papers", "proof required", "what do i need to submit",
		"certificate required",
	}, []string{"documents", "required", "checklist"}},

	{IntentDefinition, []string{
		"what is", "what does", "meaning of", "define", "definition",
	}, []string{"what is", "meaning", "definition", "overview"}},

	{IntentGrounds, []string{
		"grounds", "reasons for", "on what basis", "valid reason",
	}, []string{"grounds", "reasons", "basis"}},
}

// consequenceTriggers gate the "what will happen" branch, which further
// splits on what the consequence is about.
var consequenceTriggers = []string{
	"what will happen", "what happens", "consequence", "what if i",
}

// Detect classifies the normalized query. Unrecognized phrasing always falls
// through to general with no priority keywords.
func Detect(normalized string) (Intent, []string) {
	q := strings.ToLower(normalized)

	if containsAny(q, intentRules[0].triggers) {
		return intentRules[0].intent, intentRules[0].priority
	}

	if containsAny(q, consequenceTriggers) {
		switch {
		case containsAny(q, []string{"mutual", "both want", "both agree"}):
			return IntentProcedure, []string{"mutual consent", "procedure", "process"}
		case containsAny(q, []string{"beat", "abuse", "violat", "assault"}):
			return IntentPunishment, []string{"punishment", "penalty", "offence"}
		default:
			return IntentConsequence, []string{"consequence", "what happens", "effects"}
		}
	}

	for _, rule := range intentRules[1:] {
		if containsAny(q, rule.triggers) {
			return rule.intent, rule.priority
		}
	}
	return IntentGeneral, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
