package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNetworkBank(t *testing.T) {
	g := NewGenerator()

	easy := g.Generate("Network basics", DifficultyEasy)
	assert.Len(t, easy.Questions, 2)
	assert.Equal(t, "Network basics", easy.Topic)
	assert.Equal(t, DifficultyEasy, easy.Difficulty)

	// Bank already holds >1 question: hard mode appends nothing.
	hard := g.Generate("Network basics", DifficultyHard)
	assert.Len(t, hard.Questions, 2)
	assert.Equal(t, easy.Questions, hard.Questions)
}

func TestGenerateSingleQuestionBanks(t *testing.T) {
	g := NewGenerator()

	email := g.Generate("Email servers", DifficultyMedium)
	assert.Len(t, email.Questions, 1)
	assert.Contains(t, email.Questions[0].Question, "protocol")

	printer := g.Generate("office printer care", DifficultyMedium)
	assert.Len(t, printer.Questions, 1)
	assert.Contains(t, printer.Questions[0].Options[0], "Print Spooler")
}

func TestGenerateHardModeAppendsQuestion(t *testing.T) {
	g := NewGenerator()

	quiz := g.Generate("Unknown obscure topic", DifficultyHard)
	assert.Len(t, quiz.Questions, 2)

	appended := quiz.Questions[1]
	assert.Equal(t, "Advanced Unknown obscure topic troubleshooting often requires which approach?", appended.Question)
	assert.Contains(t, appended.Options[appended.Correct], "Systematic elimination of variables")
}

func TestGenerateBankPriorityOrder(t *testing.T) {
	g := NewGenerator()

	// "network" wins over "email" when both keywords appear.
	quiz := g.Generate("network email troubleshooting", DifficultyEasy)
	assert.Len(t, quiz.Questions, 2)
	assert.Contains(t, quiz.Questions[1].Question, "connectivity")
}

func TestGenerateCorrectIndexAlwaysValid(t *testing.T) {
	g := NewGenerator()
	topics := []string{"network", "email", "printer", "something else"}
	for _, topic := range topics {
		for _, difficulty := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
			quiz := g.Generate(topic, difficulty)
			for _, q := range quiz.Questions {
				assert.Len(t, q.Options, 4)
				assert.GreaterOrEqual(t, q.Correct, 0)
				assert.Less(t, q.Correct, len(q.Options))
			}
		}
	}
}

func TestGenerateUniqueIds(t *testing.T) {
	g := NewGenerator()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		quiz := g.Generate("network", DifficultyEasy)
		assert.True(t, strings.HasPrefix(quiz.Id, "quiz-"))
		assert.False(t, seen[quiz.Id], "duplicate quiz id %s", quiz.Id)
		seen[quiz.Id] = true
	}
}

func TestGenerateDoesNotShareBankSlices(t *testing.T) {
	g := NewGenerator()
	quiz := g.Generate("printer", DifficultyHard)
	quiz.Questions[0].Question = "mutated"

	fresh := g.Generate("printer", DifficultyHard)
	assert.NotEqual(t, "mutated", fresh.Questions[0].Question)
}
