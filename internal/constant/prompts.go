package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"

	// ChatSystemPrompt frames the assistant for free-form support chat.
	ChatSystemPrompt = "You are an AI-powered IT support assistant. Provide helpful, professional responses to IT incidents and questions. Be concise but thorough."

	// AnalysisSystemPrompt frames the assistant for incident analysis.
	AnalysisSystemPrompt = "You are an IT support analyst. Analyze incidents and provide actionable recommendations."

	// QuizSystemPrompt frames the assistant for quiz generation. The model
	// must answer with raw JSON; anything else falls back to the local bank.
	QuizSystemPrompt = "You are a technical trainer. Generate educational IT support quizzes in valid JSON format."
)
