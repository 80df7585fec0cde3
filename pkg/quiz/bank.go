package quiz

import "it-helpdesk-be/internal/entity"

// topicBank pairs a topic keyword with its fixed question set. Banks are
// tried in order; the first keyword found in the lowercased topic wins.
type topicBank struct {
	Keyword   string
	Questions []entity.Question
}

var banks = []topicBank{
	{
		Keyword: "network",
		Questions: []entity.Question{
			{
				Question: "What is the first step when troubleshooting network connectivity issues?",
				Options: []string{
					"A) Replace the network cable",
					"B) Check physical connections and status lights",
					"C) Update network drivers",
					"D) Reset the router",
				},
				Correct:     1,
				Explanation: "Always start with basic physical checks before moving to software troubleshooting.",
			},
			{
				Question: "Which command is used to test connectivity to a specific IP address?",
				Options: []string{
					"A) ipconfig",
					"B) netstat",
					"C) ping",
					"D) tracert",
				},
				Correct:     2,
				Explanation: "The ping command sends ICMP packets to test basic connectivity to a target.",
			},
		},
	},
	{
		Keyword: "email",
		Questions: []entity.Question{
			{
				Question: "What protocol is commonly used for sending emails?",
				Options: []string{
					"A) IMAP",
					"B) POP3",
					"C) SMTP",
					"D) HTTP",
				},
				Correct:     2,
				Explanation: "SMTP (Simple Mail Transfer Protocol) is the standard for sending emails.",
			},
		},
	},
	{
		Keyword: "printer",
		Questions: []entity.Question{
			{
				Question: "What service controls print jobs in Windows?",
				Options: []string{
					"A) Print Spooler",
					"B) Print Manager",
					"C) Print Service",
					"D) Print Controller",
				},
				Correct:     0,
				Explanation: "The Print Spooler service manages all print jobs and printer communications.",
			},
		},
	},
}

// genericQuestions back any topic without a dedicated bank.
var genericQuestions = []entity.Question{
	{
		Question: "What is the first step in any IT troubleshooting process?",
		Options: []string{
			"A) Restart the system",
			"B) Identify and define the problem",
			"C) Check for updates",
			"D) Contact technical support",
		},
		Correct:     1,
		Explanation: "Properly defining the problem is essential before attempting any solutions.",
	},
}

// hardModeOptions is the fixed option set of the appended hard question.
var hardModeOptions = []string{
	"A) Random trial and error",
	"B) Systematic elimination of variables",
	"C) Immediate escalation",
	"D) User re-training",
}
