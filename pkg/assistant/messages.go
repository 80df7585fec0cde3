package assistant

// Fixed conversational texts and per-type templates. These are the whole
// point of the fallback path: every reply is assembled from this file, so
// the assistant stays useful (and deterministic) with no model behind it.

var greetingPhrases = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

var helpPhrases = []string{"help", "what can you do", "commands", "options", "how to use", "guide"}

var farewellPhrases = []string{"thanks", "thank you", "bye", "goodbye", "good bye"}

// technicalTriggers keep short but meaningful messages ("wifi down") out of
// the clarification branch.
var technicalTriggers = []string{"error", "issue", "problem", "slow", "crash", "blue", "network", "email", "printer"}

const greetingMessage = `👋 Hello! I'm your IT Support Assistant.

I can help you with:
- Troubleshooting system crashes, blue screens and boot failures
- Diagnosing slow computers and performance problems
- Network, Wi-Fi and connectivity issues
- Email and Outlook configuration
- Printer setup and print queue problems

Describe your issue in a sentence or two and I'll suggest next steps, along with relevant knowledge base articles.`

const helpMessage = `🛠 **How to use the IT Support Assistant**

- Describe a problem ("my laptop shows a blue screen on boot") and I'll classify it, suggest fixes and link knowledge base articles.
- Ask about a ServiceNow incident from the Incidents page to get an analysis with recommended actions.
- Use the Learning page to generate a practice quiz on any IT topic.

The more detail you give (error messages, when it started, what changed), the better the recommendations.`

const farewellMessage = `You're welcome! If anything else comes up, just describe the issue and I'll pick it up from there. Have a great day! 👋`

const clarificationMessage = `Could you tell me a bit more about the issue? A short description of what's happening — any error messages, which application or device is affected, and when it started — will help me point you at the right fix.`

const escalationGuidance = "\n**Next Steps**: If issue persists after following these procedures, escalate to L2 support with detailed troubleshooting logs."

// assessments is the one-sentence initial assessment per chat incident type.
var assessments = map[IncidentType]string{
	TypeSystemCrash: "Critical system failure detected. This typically indicates driver conflicts, hardware issues, or corrupted system files that require immediate attention.",
	TypePerformance: "Performance degradation detected. This usually stems from resource constraints, background processes, or system optimization needs.",
	TypeNetwork:     "Network connectivity issue identified. This could be related to DNS, firewall, adapter configuration, or infrastructure problems.",
	TypeEmail:       "Email configuration or authentication issue detected. This typically involves server settings, credentials, or client configuration problems.",
	TypePrinter:     "Printer connectivity or driver issue identified. This commonly involves driver updates, queue clearing, or network configuration.",
	TypeGeneral:     "General IT support incident requiring systematic troubleshooting approach.",
}

// checklists is the 4-step generic remediation list used when no KB
// articles matched the message.
var checklists = map[IncidentType][]string{
	TypeSystemCrash: {
		"Boot system in Safe Mode",
		"Check for recent driver updates",
		"Run memory diagnostics",
		"Review Event Viewer logs",
	},
	TypePerformance: {
		"Check Task Manager for resource usage",
		"Disable unnecessary startup programs",
		"Run disk cleanup and defragmentation",
		"Scan for malware",
	},
	TypeNetwork: {
		"Check physical network connections",
		"Restart network adapter",
		"Flush DNS cache (ipconfig /flushdns)",
		"Reset TCP/IP stack",
	},
	TypeEmail: {
		"Verify server settings (IMAP/SMTP)",
		"Check credentials and authentication",
		"Test with different email client",
		"Review firewall/antivirus settings",
	},
	TypePrinter: {
		"Check power and cable connections",
		"Clear print queue",
		"Update printer drivers",
		"Restart print spooler service",
	},
	TypeGeneral: {
		"Gather detailed information about the issue",
		"Check event logs and error messages",
		"Test in different environments",
		"Document findings for escalation",
	},
}

// analysisFindings hold the ServiceNow report templates keyed by the
// 4-way analysis taxonomy. Impact strings containing %s are filled with
// the computed impact level.
type analysisFinding struct {
	Assessment string
	Impact     string
}

var analysisFindings = map[IncidentType]analysisFinding{
	TypeEmail: {
		Assessment: "Email connectivity issue detected. Likely authentication or server configuration problem affecting user productivity.",
		Impact:     "User unable to access critical communication tools.",
	},
	TypePerformance: {
		Assessment: "System performance degradation affecting user workflow. Requires immediate optimization.",
		Impact:     "Reduced productivity due to system slowdown.",
	},
	TypeSystemCrash: {
		Assessment: "Critical system failure requiring immediate attention. Hardware or driver related issue.",
		Impact:     "Complete system unavailability affecting business operations.",
	},
	TypeGeneral: {
		Assessment: "General IT support incident requiring systematic troubleshooting approach.",
		Impact:     "Service disruption affecting user operations.",
	},
}
