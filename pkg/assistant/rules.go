package assistant

import "strings"

// IncidentType labels a classified support message.
type IncidentType string

const (
	TypeSystemCrash IncidentType = "system_crash"
	TypePerformance IncidentType = "performance"
	TypeNetwork     IncidentType = "network"
	TypeEmail       IncidentType = "email"
	TypePrinter     IncidentType = "printer"
	TypeGeneral     IncidentType = "general"
)

// Priority labels used in rendered responses.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Rule is one entry of an ordered classification table: the first rule
// whose keyword matches the lowercased text wins. Keeping the precedence
// in data (rather than an if-chain) makes it testable and extensible.
type Rule struct {
	Keywords []string
	Type     IncidentType
	Priority string
}

// chatRules classify free-form chat messages. Order is load-bearing:
// a message containing both "slow" and "network" is performance, because
// performance is checked before network.
var chatRules = []Rule{
	{Keywords: []string{"blue screen", "bsod", "crash"}, Type: TypeSystemCrash, Priority: PriorityHigh},
	{Keywords: []string{"slow", "performance", "freeze"}, Type: TypePerformance, Priority: PriorityMedium},
	{Keywords: []string{"network", "internet", "wifi"}, Type: TypeNetwork, Priority: PriorityHigh},
	{Keywords: []string{"email", "outlook", "mail"}, Type: TypeEmail, Priority: PriorityMedium},
	{Keywords: []string{"printer", "print"}, Type: TypePrinter, Priority: PriorityLow},
}

// analysisRules classify ServiceNow incident descriptions into the
// narrower 4-way report taxonomy.
var analysisRules = []Rule{
	{Keywords: []string{"email", "outlook"}, Type: TypeEmail},
	{Keywords: []string{"slow", "performance"}, Type: TypePerformance},
	{Keywords: []string{"blue screen", "bsod"}, Type: TypeSystemCrash},
}

// classify returns the first matching rule, or the fallback general rule.
func classify(text string, rules []Rule) Rule {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule
			}
		}
	}
	return Rule{Type: TypeGeneral, Priority: PriorityMedium}
}

// ClassifyMessage exposes chat classification for callers and tests.
func ClassifyMessage(message string) (IncidentType, string) {
	rule := classify(message, chatRules)
	return rule.Type, rule.Priority
}
