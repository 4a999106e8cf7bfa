package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"telecom-complaint-be/internal/config"
	"telecom-complaint-be/internal/controller"
	"telecom-complaint-be/internal/pkg/logger"
	"telecom-complaint-be/internal/service"
	"telecom-complaint-be/internal/taxonomy"
	"telecom-complaint-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	ComplaintController controller.IComplaintController

	// Background Services (Exposed for main.go to run)
	AnalyticsService service.IAnalyticsService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Taxonomy (static, validated once at startup)
	menu := taxonomy.DefaultMenu()
	if err := menu.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid complaint taxonomy: %v", err)
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(factory.Settings{
		Provider:        cfg.Ai.LLMProvider,
		Model:           cfg.Ai.LLMModel,
		OllamaBaseURL:   cfg.Ai.OllamaBaseURL,
		AzureEndpoint:   cfg.Azure.Endpoint,
		AzureAPIKey:     cfg.Azure.APIKey,
		AzureAPIVersion: cfg.Azure.APIVersion,
		Timeout:         time.Duration(cfg.Ai.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Events.ComplaintTopic, pubSub)
	analyticsService := service.NewAnalyticsService(pubSub, cfg.Events.ComplaintTopic, sysLogger)
	complaintService := service.NewComplaintService(menu, llmProvider, publisherService, sysLogger)

	// 6. Controllers
	complaintController := controller.NewComplaintController(complaintService)

	return &Container{
		ComplaintController: complaintController,
		AnalyticsService:    analyticsService,
		Logger:              sysLogger,
	}
}
