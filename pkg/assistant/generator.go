package assistant

import (
	"fmt"
	"strings"

	"it-helpdesk-be/internal/entity"
)

const (
	maxListedArticles  = 2
	excerptLength      = 150
	analysisEscalation = "Consider L2 escalation if not resolved within 2 hours"
	standardEscalation = "Escalate to L2 if standard procedures don't resolve"
)

// Generator produces deterministic support responses without a model. It
// is a pure text assembler: same inputs, same output, no I/O.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Synthesize builds a chat reply for message. Branches are evaluated in
// order, first match wins: greeting, help request, farewell,
// under-specified message, then classified incident response. It never
// fails and never returns an empty string.
func (g *Generator) Synthesize(message string, relevantArticles []entity.KnowledgeArticle) string {
	normalized := normalize(message)

	switch {
	case matchesAny(normalized, greetingPhrases):
		return greetingMessage
	case matchesAny(normalized, helpPhrases):
		return helpMessage
	case matchesAny(normalized, farewellPhrases):
		return farewellMessage
	case len(normalized) < 10 && !containsAny(normalized, technicalTriggers):
		return clarificationMessage
	}

	rule := classify(message, chatRules)

	var sb strings.Builder
	sb.WriteString("🔍 **AI Incident Analysis**\n\n")
	fmt.Fprintf(&sb, "**Incident Type**: %s\n", typeLabel(rule.Type))
	fmt.Fprintf(&sb, "**Priority**: %s\n\n", rule.Priority)
	fmt.Fprintf(&sb, "**Initial Assessment**: %s", assessments[rule.Type])

	sb.WriteString("\n\n**Recommended Actions**:\n")
	if len(relevantArticles) > 0 {
		fmt.Fprintf(&sb, "Based on %d relevant knowledge base article(s):\n\n", len(relevantArticles))
		for i, article := range relevantArticles {
			if i == maxListedArticles {
				break
			}
			fmt.Fprintf(&sb, "%d. **%s**\n", i+1, article.Title)
			fmt.Fprintf(&sb, "   %s...\n\n", excerpt(article.Content, excerptLength))
		}
	} else {
		for i, step := range checklists[rule.Type] {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
	}

	sb.WriteString(escalationGuidance)
	return sb.String()
}

// AnalyzeIncident builds the ServiceNow analysis report. It shares the
// ordered-rule classification with Synthesize but uses the narrower
// report taxonomy and closes with a priority-dependent escalation window.
func (g *Generator) AnalyzeIncident(incident entity.Incident, relevantArticles []entity.KnowledgeArticle) string {
	rule := classify(incident.Description, analysisRules)
	finding := analysisFindings[rule.Type]

	var sb strings.Builder
	sb.WriteString("📋 **ServiceNow Incident Analysis**\n\n")
	fmt.Fprintf(&sb, "**Incident**: %s - %s\n", incident.Number, incident.Title)
	fmt.Fprintf(&sb, "**Priority**: %s\n", incident.Priority)
	fmt.Fprintf(&sb, "**Category**: %s\n\n", incident.Category)

	fmt.Fprintf(&sb, "**Analysis**: %s\n\n", finding.Assessment)
	fmt.Fprintf(&sb, "**Impact**: %s - %s\n\n", impactLevel(rule.Type, incident.Priority), finding.Impact)

	sb.WriteString("**Recommended Actions**:\n")
	if len(relevantArticles) > 0 {
		fmt.Fprintf(&sb, "Based on %d relevant KB articles:\n", len(relevantArticles))
		for i, article := range relevantArticles {
			if i == maxListedArticles {
				break
			}
			fmt.Fprintf(&sb, "%d. Follow procedures in \"%s\"\n", i+1, article.Title)
		}
	} else {
		sb.WriteString("1. Gather additional diagnostic information\n")
		sb.WriteString("2. Follow standard troubleshooting procedures\n")
		sb.WriteString("3. Update incident with findings\n")
	}

	escalation := standardEscalation
	if strings.Contains(incident.Priority, "Critical") || strings.Contains(incident.Priority, "High") {
		escalation = analysisEscalation
	}
	fmt.Fprintf(&sb, "\n**Escalation**: %s", escalation)

	return sb.String()
}

// impactLevel follows the report taxonomy: crashes are always High,
// performance always Medium, everything else tracks incident priority.
func impactLevel(t IncidentType, priority string) string {
	switch t {
	case TypeSystemCrash:
		return PriorityHigh
	case TypePerformance:
		return PriorityMedium
	default:
		if strings.Contains(priority, PriorityHigh) {
			return PriorityHigh
		}
		return PriorityMedium
	}
}

func typeLabel(t IncidentType) string {
	return strings.ToUpper(strings.ReplaceAll(string(t), "_", " "))
}

// normalize lowercases and strips surrounding whitespace plus trailing
// punctuation, so "Hello!!!" still matches the greeting set.
func normalize(message string) string {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	return strings.TrimRight(trimmed, "!?.,;: ")
}

// matchesAny reports whether text equals a phrase or starts with one
// followed by a word boundary ("hi there" matches "hi", "this" does not).
func matchesAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if text == phrase || strings.HasPrefix(text, phrase+" ") {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func excerpt(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}
