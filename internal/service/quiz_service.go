package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"it-helpdesk-be/internal/constant"
	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/entity"
	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/pkg/events"
	"it-helpdesk-be/pkg/llm"
	"it-helpdesk-be/pkg/quiz"

	"github.com/google/uuid"
)

const quizMaxTokens = 1500

type IQuizService interface {
	Generate(ctx context.Context, request *dto.GenerateQuizRequest) *entity.Quiz
}

type quizService struct {
	llmProvider    llm.LLMProvider
	generator      *quiz.Generator
	publisher      IPublisherService
	logger         logger.ILogger
	requestTimeout time.Duration
}

func NewQuizService(
	llmProvider llm.LLMProvider,
	generator *quiz.Generator,
	publisher IPublisherService,
	log logger.ILogger,
	requestTimeout time.Duration,
) IQuizService {
	return &quizService{
		llmProvider:    llmProvider,
		generator:      generator,
		publisher:      publisher,
		logger:         log,
		requestTimeout: requestTimeout,
	}
}

// Generate asks the provider for a quiz and validates the JSON it returns.
// Any failure — transport, malformed JSON, out-of-range answer indexes —
// silently yields the local question-bank quiz instead.
func (qs *quizService) Generate(ctx context.Context, request *dto.GenerateQuizRequest) *entity.Quiz {
	difficulty := request.Difficulty
	if difficulty == "" {
		difficulty = quiz.DifficultyMedium
	}

	generated, usedFallback := qs.upstreamQuiz(ctx, request.Topic, difficulty)
	if usedFallback {
		local := qs.generator.Generate(request.Topic, difficulty)
		generated = &local
	}

	qs.publisher.PublishActivity(ctx, events.NewActivity(events.TypeQuizGenerated, map[string]interface{}{
		"topic":     request.Topic,
		"questions": len(generated.Questions),
		"fallback":  usedFallback,
	}))

	return generated
}

type upstreamQuizPayload struct {
	Questions []entity.Question `json:"questions"`
}

func (qs *quizService) upstreamQuiz(ctx context.Context, topic, difficulty string) (*entity.Quiz, bool) {
	callCtx, cancel := context.WithTimeout(ctx, qs.requestTimeout)
	defer cancel()

	reply, err := qs.llmProvider.Chat(callCtx,
		[]llm.Message{
			{Role: constant.ChatMessageRoleSystem, Content: constant.QuizSystemPrompt},
			{Role: constant.ChatMessageRoleUser, Content: buildQuizPrompt(topic, difficulty)},
		},
		llm.WithMaxTokens(quizMaxTokens),
		llm.WithTemperature(chatTemperature),
	)
	if err != nil {
		qs.logger.Warn("Quiz", "Provider unavailable, using local question bank", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return nil, true
	}

	var payload upstreamQuizPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &payload); err != nil || !validQuestions(payload.Questions) {
		qs.logger.Warn("Quiz", "Malformed upstream quiz, using local question bank", map[string]interface{}{
			"topic": topic,
		})
		return nil, true
	}

	return &entity.Quiz{
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  payload.Questions,
		Id:         fmt.Sprintf("quiz-%s", uuid.NewString()),
	}, false
}

// validQuestions rejects upstream quizzes that would break the client:
// every question needs 4 options and an in-range answer index.
func validQuestions(questions []entity.Question) bool {
	if len(questions) == 0 {
		return false
	}
	for _, q := range questions {
		if q.Question == "" || len(q.Options) != 4 {
			return false
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return false
		}
	}
	return true
}

func buildQuizPrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Generate a technical IT support quiz with 5 multiple choice questions about: %s

Difficulty level: %s

Format as JSON with this structure:
{
  "questions": [
    {
      "question": "Question text",
      "options": ["A) option1", "B) option2", "C) option3", "D) option4"],
      "correct": 0,
      "explanation": "Brief explanation of correct answer"
    }
  ]
}`, topic, difficulty)
}
