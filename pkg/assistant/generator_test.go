package assistant

import (
	"strings"
	"testing"

	"it-helpdesk-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

var sampleArticles = []entity.KnowledgeArticle{
	{Id: "KB001", Title: "BSOD Troubleshooting", Category: "Windows", Content: strings.Repeat("driver guidance ", 20), Tags: []string{"BSOD"}},
	{Id: "KB006", Title: "Performance Optimization", Category: "Performance", Content: "short content", Tags: []string{"Performance"}},
	{Id: "KB003", Title: "Network Resolution", Category: "Network", Content: "network content", Tags: []string{"Network"}},
}

func TestSynthesizeGreeting(t *testing.T) {
	g := NewGenerator()

	// The greeting branch ignores whatever articles matched.
	withArticles := g.Synthesize("hello", sampleArticles)
	withoutArticles := g.Synthesize("hello", nil)
	assert.Equal(t, withoutArticles, withArticles)
	assert.Equal(t, greetingMessage, withArticles)

	tests := []string{"hi", "Hi there", "hello!!!", "HEY", "good morning", "good evening."}
	for _, message := range tests {
		t.Run(message, func(t *testing.T) {
			assert.Equal(t, greetingMessage, g.Synthesize(message, nil))
		})
	}
}

func TestSynthesizeHelpAndFarewell(t *testing.T) {
	g := NewGenerator()

	assert.Equal(t, helpMessage, g.Synthesize("what can you do", nil))
	assert.Equal(t, helpMessage, g.Synthesize("help", nil))
	assert.Equal(t, helpMessage, g.Synthesize("guide?", nil))

	assert.Equal(t, farewellMessage, g.Synthesize("thanks", nil))
	assert.Equal(t, farewellMessage, g.Synthesize("Thank you!", nil))
	assert.Equal(t, farewellMessage, g.Synthesize("bye", nil))
}

func TestSynthesizeClarification(t *testing.T) {
	g := NewGenerator()

	// Short and vague: ask for more detail.
	assert.Equal(t, clarificationMessage, g.Synthesize("broken", nil))
	assert.Equal(t, clarificationMessage, g.Synthesize("it's bad", nil))

	// Short but technical: classify instead.
	assert.NotEqual(t, clarificationMessage, g.Synthesize("slow pc", nil))
	assert.NotEqual(t, clarificationMessage, g.Synthesize("error", nil))
}

func TestSynthesizeBlueScreenChecklist(t *testing.T) {
	g := NewGenerator()
	response := g.Synthesize("My laptop shows a blue screen on boot", nil)

	assert.Contains(t, response, "**Incident Type**: SYSTEM CRASH")
	assert.Contains(t, response, "**Priority**: High")
	assert.Contains(t, response, "1. Boot system in Safe Mode\n2. Check for recent driver updates\n3. Run memory diagnostics\n4. Review Event Viewer logs\n")
	assert.Contains(t, response, "escalate to L2 support")
}

func TestSynthesizeClassificationPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantType     IncidentType
		wantPriority string
	}{
		{"crash beats performance", "system crash and very slow", TypeSystemCrash, PriorityHigh},
		{"performance beats network", "the network feels slow today", TypePerformance, PriorityMedium},
		{"network beats email", "wifi drops when opening email", TypeNetwork, PriorityHigh},
		{"email beats printer", "outlook will not print", TypeEmail, PriorityMedium},
		{"printer alone", "printer out of order", TypePrinter, PriorityLow},
		{"general fallback", "strange behaviour in the hr application", TypeGeneral, PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotPriority := ClassifyMessage(tt.message)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantPriority, gotPriority)
		})
	}
}

func TestSynthesizeListsArticles(t *testing.T) {
	g := NewGenerator()
	response := g.Synthesize("blue screen after driver update", sampleArticles)

	// At most two articles listed, each with a 150-char excerpt.
	assert.Contains(t, response, "Based on 3 relevant knowledge base article(s)")
	assert.Contains(t, response, "1. **BSOD Troubleshooting**")
	assert.Contains(t, response, "2. **Performance Optimization**")
	assert.NotContains(t, response, "Network Resolution")
	assert.Contains(t, response, "short content...")
	assert.Contains(t, response, excerpt(sampleArticles[0].Content, 150)+"...")
}

func TestSynthesizeNeverEmpty(t *testing.T) {
	g := NewGenerator()
	for _, message := range []string{"", " ", "!!!", strings.Repeat("x", 5000)} {
		assert.NotEmpty(t, g.Synthesize(message, nil))
	}
}

func TestAnalyzeIncidentTaxonomy(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name        string
		description string
		wantPhrase  string
		wantImpact  string
		priority    string
	}{
		{"email", "cannot open outlook mailbox", "Email connectivity issue detected", "**Impact**: High", "2-High"},
		{"performance", "laptop is slow and freezing", "System performance degradation", "**Impact**: Medium", "2-High"},
		{"bsod", "blue screen with IRQL error", "Critical system failure", "**Impact**: High", "3-Medium"},
		{"general", "badge reader offline", "General IT support incident", "**Impact**: Medium", "3-Medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incident := entity.Incident{
				Number: "INC1", Title: "t", Description: tt.description,
				Priority: tt.priority, Category: "c",
			}
			analysis := g.AnalyzeIncident(incident, nil)
			assert.Contains(t, analysis, tt.wantPhrase)
			assert.Contains(t, analysis, tt.wantImpact)
		})
	}
}

func TestAnalyzeIncidentEscalationWindow(t *testing.T) {
	g := NewGenerator()
	base := entity.Incident{Number: "INC2", Title: "t", Description: "printer jam", Category: "Hardware"}

	highPriority := base
	highPriority.Priority = "1-Critical"
	assert.Contains(t, g.AnalyzeIncident(highPriority, nil), analysisEscalation)

	lowPriority := base
	lowPriority.Priority = "4-Low"
	assert.Contains(t, g.AnalyzeIncident(lowPriority, nil), standardEscalation)
}

func TestAnalyzeIncidentListsKBReferences(t *testing.T) {
	g := NewGenerator()
	incident := entity.Incident{Number: "INC3", Title: "t", Description: "outlook down", Priority: "2-High", Category: "Email"}

	analysis := g.AnalyzeIncident(incident, sampleArticles)
	assert.Contains(t, analysis, "Based on 3 relevant KB articles")
	assert.Contains(t, analysis, `1. Follow procedures in "BSOD Troubleshooting"`)
	assert.Contains(t, analysis, `2. Follow procedures in "Performance Optimization"`)
	assert.NotContains(t, analysis, "Network Resolution")
}
