package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"it-helpdesk-be/internal/constant"
	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/entity"
	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/internal/repository/contract"
	"it-helpdesk-be/internal/repository/memory"
	"it-helpdesk-be/pkg/assistant"
	"it-helpdesk-be/pkg/events"
	"it-helpdesk-be/pkg/llm"
	"it-helpdesk-be/pkg/search"
)

// ErrIncidentNotFound distinguishes a bad incident number (404) from
// internal failures (which the analyze endpoint masks with a generic 200).
var ErrIncidentNotFound = errors.New("incident not found")

const (
	analysisMaxTokens = 500
	maxRelevantKB     = 3
)

// incidentRecommendations is the fixed action list attached to every
// successful analysis.
var incidentRecommendations = []string{
	"Follow the step-by-step procedures in referenced KB articles",
	"Update incident status after each troubleshooting step",
	"Escalate to L2 support if issue persists after following KB procedures",
}

type IIncidentService interface {
	List() *dto.IncidentListResponse
	Analyze(ctx context.Context, number string) (*dto.AnalyzeIncidentResponse, error)
}

type incidentService struct {
	incidentRepo   contract.IIncidentRepository
	scorer         *search.Scorer
	llmProvider    llm.LLMProvider
	generator      *assistant.Generator
	analysisCache  *memory.AnalysisCache
	publisher      IPublisherService
	logger         logger.ILogger
	requestTimeout time.Duration
}

func NewIncidentService(
	incidentRepo contract.IIncidentRepository,
	scorer *search.Scorer,
	llmProvider llm.LLMProvider,
	generator *assistant.Generator,
	analysisCache *memory.AnalysisCache,
	publisher IPublisherService,
	log logger.ILogger,
	requestTimeout time.Duration,
) IIncidentService {
	return &incidentService{
		incidentRepo:   incidentRepo,
		scorer:         scorer,
		llmProvider:    llmProvider,
		generator:      generator,
		analysisCache:  analysisCache,
		publisher:      publisher,
		logger:         log,
		requestTimeout: requestTimeout,
	}
}

func (is *incidentService) List() *dto.IncidentListResponse {
	incidents := is.incidentRepo.GetAll()
	return &dto.IncidentListResponse{
		Incidents:   incidents,
		Total:       len(incidents),
		Integration: constant.IntegrationLabel,
	}
}

func (is *incidentService) Analyze(ctx context.Context, number string) (*dto.AnalyzeIncidentResponse, error) {
	incident, found := is.incidentRepo.FindByNumber(number)
	if !found {
		return nil, ErrIncidentNotFound
	}

	relevantKB := is.scorer.Search(incident.Description, search.DefaultLimit)

	analysis, usedFallback := is.analyzeDescription(ctx, number, func() string {
		return is.generator.AnalyzeIncident(*incident, relevantKB)
	}, *incident)

	if len(relevantKB) > maxRelevantKB {
		relevantKB = relevantKB[:maxRelevantKB]
	}

	is.publisher.PublishActivity(ctx, events.NewActivity(events.TypeIncidentAnalyzed, map[string]interface{}{
		"number":   number,
		"fallback": usedFallback,
	}))

	return &dto.AnalyzeIncidentResponse{
		Incident:        *incident,
		Analysis:        analysis,
		RelevantKB:      nonNil(relevantKB),
		Recommendations: incidentRecommendations,
	}, nil
}

// analyzeDescription tries the provider once (cached per incident number),
// falling back to the deterministic report builder.
func (is *incidentService) analyzeDescription(ctx context.Context, number string, fallback func() string, incident entity.Incident) (string, bool) {
	if cached, found := is.analysisCache.Get(number); found {
		return cached, false
	}

	callCtx, cancel := context.WithTimeout(ctx, is.requestTimeout)
	defer cancel()

	reply, err := is.llmProvider.Chat(callCtx,
		[]llm.Message{
			{Role: constant.ChatMessageRoleSystem, Content: constant.AnalysisSystemPrompt},
			{Role: constant.ChatMessageRoleUser, Content: buildAnalysisPrompt(incident)},
		},
		llm.WithMaxTokens(analysisMaxTokens),
		llm.WithTemperature(chatTemperature),
	)
	if err != nil || strings.TrimSpace(reply) == "" {
		is.logger.Warn("Incident", "Provider unavailable, using local analysis", map[string]interface{}{
			"number": number,
			"error":  errString(err),
		})
		return fallback(), true
	}

	is.analysisCache.Set(number, reply)
	return reply, false
}

func buildAnalysisPrompt(incident entity.Incident) string {
	return fmt.Sprintf(`Analyze this ServiceNow incident and provide recommendations:

Incident: %s
Description: %s
Category: %s
Priority: %s

Provide a brief analysis and recommended next steps.`,
		incident.Title, incident.Description, incident.Category, incident.Priority)
}
