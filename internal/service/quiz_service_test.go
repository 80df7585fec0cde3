package service

import (
	"context"
	"testing"
	"time"

	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/pkg/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService(provider *stubProvider, publisher *recordingPublisher) IQuizService {
	return NewQuizService(provider, quiz.NewGenerator(), publisher, nopLogger{}, time.Second)
}

func TestQuizFallsBackWhenProviderFails(t *testing.T) {
	qs := newQuizService(failingProvider(), &recordingPublisher{})

	res := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "Network basics", Difficulty: "easy"})
	assert.Equal(t, "Network basics", res.Topic)
	assert.Equal(t, "easy", res.Difficulty)
	assert.Len(t, res.Questions, 2)
}

func TestQuizFallsBackOnMalformedJSON(t *testing.T) {
	provider := &stubProvider{reply: "Sure! Here is your quiz: 1) What is DNS?"}
	qs := newQuizService(provider, &recordingPublisher{})

	res := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "printer", Difficulty: "medium"})
	require.Len(t, res.Questions, 1)
	assert.Contains(t, res.Questions[0].Options[0], "Print Spooler")
}

func TestQuizFallsBackOnInvalidQuestions(t *testing.T) {
	// Parseable JSON but an out-of-range answer index must not reach the client.
	provider := &stubProvider{reply: `{"questions":[{"question":"q","options":["a","b","c","d"],"correct":7,"explanation":"e"}]}`}
	qs := newQuizService(provider, &recordingPublisher{})

	res := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "printer", Difficulty: "medium"})
	require.Len(t, res.Questions, 1)
	assert.Contains(t, res.Questions[0].Question, "service controls print jobs")
}

func TestQuizUsesValidProviderReply(t *testing.T) {
	provider := &stubProvider{reply: `{"questions":[{"question":"What does DHCP do?","options":["A) Routes","B) Assigns IPs","C) Resolves names","D) Blocks ports"],"correct":1,"explanation":"DHCP leases addresses."}]}`}
	qs := newQuizService(provider, &recordingPublisher{})

	res := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "networking", Difficulty: "easy"})
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "What does DHCP do?", res.Questions[0].Question)
	assert.Equal(t, 1, res.Questions[0].Correct)
}

func TestQuizDefaultsDifficultyToMedium(t *testing.T) {
	qs := newQuizService(failingProvider(), &recordingPublisher{})

	res := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "email"})
	assert.Equal(t, quiz.DifficultyMedium, res.Difficulty)
}

func TestQuizIdsAreUnique(t *testing.T) {
	qs := newQuizService(failingProvider(), &recordingPublisher{})

	first := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "email", Difficulty: "hard"})
	second := qs.Generate(context.Background(), &dto.GenerateQuizRequest{Topic: "email", Difficulty: "hard"})
	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, first.Questions, second.Questions)
}
