package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"it-helpdesk-be/internal/constant"
	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/entity"
	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/pkg/assistant"
	"it-helpdesk-be/pkg/events"
	"it-helpdesk-be/pkg/llm"
	"it-helpdesk-be/pkg/search"
)

const (
	chatMaxTokens     = 1000
	chatTemperature   = 0.7
	promptExcerptSize = 200
)

type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatService routes each message through the lexical scorer, attempts one
// provider call, and substitutes the deterministic synthesizer on any
// provider failure. The caller never sees provider errors.
type chatService struct {
	scorer         *search.Scorer
	llmProvider    llm.LLMProvider
	generator      *assistant.Generator
	publisher      IPublisherService
	logger         logger.ILogger
	requestTimeout time.Duration
}

func NewChatService(
	scorer *search.Scorer,
	llmProvider llm.LLMProvider,
	generator *assistant.Generator,
	publisher IPublisherService,
	log logger.ILogger,
	requestTimeout time.Duration,
) IChatService {
	return &chatService{
		scorer:         scorer,
		llmProvider:    llmProvider,
		generator:      generator,
		publisher:      publisher,
		logger:         log,
		requestTimeout: requestTimeout,
	}
}

func (cs *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	relevantKB := cs.scorer.Search(request.Message, search.DefaultLimit)

	response, usedFallback := cs.generateResponse(ctx, request.Message, relevantKB)

	sources := make([]dto.SourceDTO, len(relevantKB))
	for i, article := range relevantKB {
		sources[i] = dto.SourceDTO{
			Id:       article.Id,
			Title:    article.Title,
			Category: article.Category,
		}
	}

	cs.publisher.PublishActivity(ctx, events.NewActivity(events.TypeChatHandled, map[string]interface{}{
		"sources":  len(sources),
		"fallback": usedFallback,
	}))

	return &dto.ChatResponse{
		Response: response,
		Sources:  sources,
	}, nil
}

// generateResponse makes at most one provider attempt. The second return
// value reports whether the local synthesizer produced the text.
func (cs *chatService) generateResponse(ctx context.Context, message string, relevantKB []entity.KnowledgeArticle) (string, bool) {
	callCtx, cancel := context.WithTimeout(ctx, cs.requestTimeout)
	defer cancel()

	reply, err := cs.llmProvider.Chat(callCtx,
		[]llm.Message{
			{Role: constant.ChatMessageRoleSystem, Content: constant.ChatSystemPrompt},
			{Role: constant.ChatMessageRoleUser, Content: buildChatContext(message, relevantKB)},
		},
		llm.WithMaxTokens(chatMaxTokens),
		llm.WithTemperature(chatTemperature),
	)
	if err != nil || strings.TrimSpace(reply) == "" {
		cs.logger.Warn("Chat", "Provider unavailable, using local synthesizer", map[string]interface{}{
			"error": errString(err),
		})
		return cs.generator.Synthesize(message, relevantKB), true
	}

	return reply, false
}

// buildChatContext assembles a bounded prompt: at most DefaultLimit
// articles, each excerpted to 200 characters.
func buildChatContext(message string, relevantKB []entity.KnowledgeArticle) string {
	var sb strings.Builder
	sb.WriteString("You are an IT support assistant. Help analyze this incident and provide solutions.\n\n")
	if len(relevantKB) > 0 {
		sb.WriteString("Relevant knowledge base articles:\n")
		for _, article := range relevantKB {
			fmt.Fprintf(&sb, "- %s: %s...\n", article.Title, truncate(article.Content, promptExcerptSize))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "User incident: %s", message)
	return sb.String()
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func errString(err error) string {
	if err == nil {
		return "empty completion"
	}
	return err.Error()
}
