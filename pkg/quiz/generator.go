package quiz

import (
	"fmt"
	"strings"

	"it-helpdesk-be/internal/entity"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Generator builds quizzes from the fixed topic banks. Output is
// deterministic for a (topic, difficulty) pair except for the quiz id.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate selects the question bank matching topic (network, email,
// printer, generic — in that priority order) and, on hard difficulty,
// appends one templated question when the bank yielded exactly one.
func (g *Generator) Generate(topic, difficulty string) entity.Quiz {
	questions := selectBank(topic)

	if difficulty == DifficultyHard && len(questions) == 1 {
		questions = append(questions, hardModeQuestion(topic))
	}

	return entity.Quiz{
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
		Id:         fmt.Sprintf("quiz-%s", uuid.NewString()),
	}
}

func selectBank(topic string) []entity.Question {
	lowered := strings.ToLower(topic)
	for _, bank := range banks {
		if strings.Contains(lowered, bank.Keyword) {
			return append([]entity.Question(nil), bank.Questions...)
		}
	}
	return append([]entity.Question(nil), genericQuestions...)
}

func hardModeQuestion(topic string) entity.Question {
	return entity.Question{
		Question:    fmt.Sprintf("Advanced %s troubleshooting often requires which approach?", topic),
		Options:     append([]string(nil), hardModeOptions...),
		Correct:     1,
		Explanation: "Advanced troubleshooting requires methodical isolation of variables to identify root causes.",
	}
}
