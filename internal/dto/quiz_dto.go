package dto

// GenerateQuizRequest is the POST /api/quiz/generate body. Difficulty
// defaults to "medium" when absent.
type GenerateQuizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}
