package dto

type FeedbackRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Feature string `json:"feature"`
}

type FeedbackResponse struct {
	Message string `json:"message"`
	Id      string `json:"id"`
}
