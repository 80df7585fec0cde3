package bootstrap

import (
	"context"
	"log"

	"it-helpdesk-be/internal/config"
	"it-helpdesk-be/internal/constant"
	"it-helpdesk-be/internal/controller"
	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/internal/pkg/mailer"
	"it-helpdesk-be/internal/repository/memory"
	"it-helpdesk-be/internal/service"
	"it-helpdesk-be/internal/websocket"
	"it-helpdesk-be/pkg/assistant"
	"it-helpdesk-be/pkg/llm"
	"it-helpdesk-be/pkg/llm/factory"
	pkgnats "it-helpdesk-be/pkg/nats"
	"it-helpdesk-be/pkg/quiz"
	"it-helpdesk-be/pkg/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	KnowledgeController  controller.IKnowledgeController
	ServiceNowController controller.IServiceNowController
	QuizController       controller.IQuizController
	FeedbackController   controller.IFeedbackController
	HealthController     controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS mirror of the activity stream
	var natsPub *pkgnats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pkgnats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// Optional Redis for cross-instance websocket fan-out
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider (%v), using local fallback", err)
		llmProvider = llm.NewDisabled()
	}
	providerMode := cfg.Ai.LLMProvider
	if _, disabled := llmProvider.(llm.Disabled); disabled {
		providerMode = "local-fallback"
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", providerMode, cfg.Ai.LLMModel)

	// 4. Fixture Repositories & Domain Components
	knowledgeRepo := memory.NewKnowledgeRepository(constant.KnowledgeBase)
	incidentRepo := memory.NewIncidentRepository(constant.ServiceNowIncidents)
	feedbackRepo := memory.NewFeedbackRepository()
	analysisCache := memory.NewAnalysisCache()

	scorer := search.NewScorer(knowledgeRepo.GetAll())
	responseGenerator := assistant.NewGenerator()
	quizGenerator := quiz.NewGenerator()

	// Optional escalation mail
	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" && cfg.SMTP.EscalationsTo != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			cfg.SMTP.EscalationsTo,
		)
	}

	// 5. WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, wsHub, sysLogger)

	chatService := service.NewChatService(
		scorer,
		llmProvider,
		responseGenerator,
		publisherService,
		sysLogger,
		cfg.Ai.RequestTimeout,
	)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo)
	incidentService := service.NewIncidentService(
		incidentRepo,
		scorer,
		llmProvider,
		responseGenerator,
		analysisCache,
		publisherService,
		sysLogger,
		cfg.Ai.RequestTimeout,
	)
	quizService := service.NewQuizService(
		llmProvider,
		quizGenerator,
		publisherService,
		sysLogger,
		cfg.Ai.RequestTimeout,
	)
	feedbackService := service.NewFeedbackService(feedbackRepo, emailService, publisherService, sysLogger)

	// 7. Controllers
	return &Container{
		ChatController:       controller.NewChatController(chatService),
		KnowledgeController:  controller.NewKnowledgeController(knowledgeService),
		ServiceNowController: controller.NewServiceNowController(incidentService),
		QuizController:       controller.NewQuizController(quizService),
		FeedbackController:   controller.NewFeedbackController(feedbackService),
		HealthController:     controller.NewHealthController(providerMode),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
