package match

import "strings"

// A context is a named cluster of trigger phrases that signals what a query is
// really about, independent of raw keyword overlap. "police" appears both in
// "how to file an FIR" and "police harassing me"; the context table is what
// tells those apart.
type contextDef struct {
	name     string
	triggers []string // literal substrings of the lowercased query
}

var contextDefs = []contextDef{
	{"filing_procedure", []string{
		"file fir", "file an fir", "file a fir", "register fir", "register an fir",
		"how to file", "lodge a complaint", "lodge complaint", "register a case",
	}},
	{"rights_violation", []string{
		"harass", "threaten", "intimidat", "torture", "misbehav",
		"forcing me", "falsely implicat", "illegal detention", "custodial",
	}},
	{"family_matter", []string{
		"divorce", "husband", "wife", "spouse", "alimony", "maintenance",
		"custody", "dowry", "in-laws", "in laws",
	}},
	{"property_matter", []string{
		"property", "inherit", "succession", "ancestral", "legal heir",
		"partition", "mutation", "sale deed",
	}},
	{"employment_matter", []string{
		"salary", "employer", "workplace", "wages", "terminated from",
		"fired from", "resignation", "gratuity", "provident fund",
	}},
	{"consumer_matter", []string{
		"refund", "defective", "warranty", "ordered online", "online order",
		"shopkeeper", "e-commerce", "product i bought",
	}},
	{"education_matter", []string{
		"school", "teacher", "student", "college", "admission", "exam",
		"principal", "tuition",
	}},
	{"cyber_matter", []string{
		"online fraud", "cyber", "hacked", "otp", "upi", "phishing",
		"social media", "facebook", "instagram", "whatsapp",
	}},
	{"money_recovery", []string{
		"cheque", "bounce", "loan", "emi", "borrowed", "owes me", "lent",
	}},
	{"tenancy_matter", []string{
		"landlord", "tenant", "rent", "evict", "security deposit",
	}},
}

// categoryContextRule maps an entry-category substring to the contexts that
// amplify or suppress its base score. Boost factors run 1.8x to 2.8x;
// suppression factors are at most 0.2x. Suppression encodes known false
// matches: a rights-violation query must not land on a plain procedure entry
// just because they share vocabulary.
type categoryContextRule struct {
	categorySubstr string
	boost          map[string]float64
	suppress       map[string]float64
}

var categoryContextRules = []categoryContextRule{
	{
		categorySubstr: "criminal",
		boost:          map[string]float64{"filing_procedure": 2.5},
		suppress:       map[string]float64{"rights_violation": 0.2},
	},
	{
		categorySubstr: "constitutional",
		boost:          map[string]float64{"rights_violation": 2.8},
	},
	{
		categorySubstr: "family",
		boost:          map[string]float64{"family_matter": 2.5},
		suppress:       map[string]float64{"consumer_matter": 0.2},
	},
	{
		categorySubstr: "property",
		boost:          map[string]float64{"property_matter": 2.2},
		suppress:       map[string]float64{"cyber_matter": 0.2},
	},
	{
		categorySubstr: "inheritance",
		boost:          map[string]float64{"property_matter": 2.4},
	},
	{
		categorySubstr: "employment",
		boost:          map[string]float64{"employment_matter": 2.4},
	},
	{
		categorySubstr: "consumer",
		boost:          map[string]float64{"consumer_matter": 2.4},
		suppress:       map[string]float64{"family_matter": 0.2},
	},
	{
		categorySubstr: "education",
		boost:          map[string]float64{"education_matter": 2.6},
	},
	{
		categorySubstr: "cyber",
		boost:          map[string]float64{"cyber_matter": 2.6},
	},
	{
		categorySubstr: "cheque",
		boost:          map[string]float64{"money_recovery": 2.4},
	},
	{
		categorySubstr: "tenant",
		boost:          map[string]float64{"tenancy_matter": 2.4},
	},
}

// activeContexts returns the names of every context with a trigger substring
// in the lowercased original query.
func activeContexts(rawLower string) []string {
	var active []string
	for _, c := range contextDefs {
		for _, t := range c.triggers {
			if strings.Contains(rawLower, t) {
				active = append(active, c.name)
				break
			}
		}
	}
	return active
}

// contextMultiplier resolves the Step-B factor for a category given the active
// contexts. Suppression wins over boosts; among several boosts the strongest
// applies; with no applicable rule the score passes through at 1.0.
func contextMultiplier(category string, active []string) float64 {
	catLower := strings.ToLower(category)

	suppression := 0.0
	suppressed := false
	boost := 0.0

	for _, rule := range categoryContextRules {
		if !strings.Contains(catLower, rule.categorySubstr) {
			continue
		}
		for _, name := range active {
			if f, ok := rule.suppress[name]; ok {
				if !suppressed || f < suppression {
					suppression = f
					suppressed = true
				}
			}
			if f, ok := rule.boost[name]; ok && f > boost {
				boost = f
			}
		}
	}

	if suppressed {
		return suppression
	}
	if boost > 0 {
		return boost
	}
	return 1.0
}
