package entity

// Question is a single multiple-choice quiz question. Correct is an index
// into Options and is always within range for questions produced by
// pkg/quiz.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Quiz is built fresh per request and never mutated afterwards.
type Quiz struct {
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
	Id         string     `json:"id"`
}
