package dto

// ChatRequest is the POST /api/chat body. Message is the only required
// field; a missing message is a 400, never a fallback.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// SourceDTO is the trimmed article reference returned with chat replies.
type SourceDTO struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type ChatResponse struct {
	Response string      `json:"response"`
	Sources  []SourceDTO `json:"sources"`
}
