package bootstrap

import (
	"log"

	"legal-chat-be/internal/config"
	"legal-chat-be/internal/controller"
	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/internal/repository/unitofwork"
	"legal-chat-be/internal/service"
	"legal-chat-be/pkg/answer"
	"legal-chat-be/pkg/cache"
	"legal-chat-be/pkg/database"
	"legal-chat-be/pkg/llm/factory"
	"legal-chat-be/pkg/ratelimit"
	"legal-chat-be/pkg/relevance"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Middleware dependencies
	GeneralLimiter *ratelimit.Limiter

	// Background services (exposed for main.go to run)
	AuditService service.IAuditService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Redis-backed stores. Missing or unreachable redis degrades to
	// in-process rate limiting and no document cache.
	var limiterStore ratelimit.SortedSetStore
	var cacheStore cache.Store
	if cfg.App.RedisURL != "" {
		rdb, err := database.NewRedisClient(cfg.App.RedisURL)
		if err != nil {
			appLogger.Warn("bootstrap", "redis unavailable, running degraded", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			limiterStore = ratelimit.NewRedisStore(rdb)
			cacheStore = cache.NewRedisStore(rdb)
		}
	}

	docCache := cache.New(cacheStore, appLogger)
	chatLimiter := ratelimit.NewLimiter(limiterStore, ratelimit.ChatQueryPolicy)
	generalLimiter := ratelimit.NewLimiter(limiterStore, ratelimit.GeneralAPIPolicy)

	// 3. LLM provider
	baseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, baseURL, cfg.Ai.OpenAIAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider: %v", err)
	}

	selector := relevance.NewSelector(llmProvider, appLogger)
	generator := answer.NewGenerator(llmProvider)

	// 4. Audit events
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	auditService := service.NewAuditService(pubSub, appLogger)

	// 5. Services and controllers
	chatService := service.NewChatService(uowFactory, selector, generator, docCache, auditService, appLogger)
	chatController := controller.NewChatController(chatService, chatLimiter, appLogger)

	return &Container{
		ChatController: chatController,
		GeneralLimiter: generalLimiter,
		AuditService:   auditService,
		Logger:         appLogger,
	}
}
