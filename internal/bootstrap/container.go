package bootstrap

import (
	"fmt"
	"time"

	"ai-study-tutor-be/internal/config"
	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/internal/controller"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/internal/repository/implementation"
	"ai-study-tutor-be/internal/repository/memory"
	"ai-study-tutor-be/internal/service"
	"ai-study-tutor-be/pkg/llm"
	"ai-study-tutor-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ConversationController controller.IConversationController
	MessageController      controller.IMessageController
	UploadController       controller.IUploadController
	UserController         controller.IUserController
	HealthController       controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	store          contract.Store
	pubSub         *gochannel.GoChannel
	activityLogger logger.ILogger
}

// NewContainer wires the application from configuration.
func NewContainer(cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	store, err := NewStore(cfg.Storage.Driver, cfg.App.Environment == "debug")
	if err != nil {
		return nil, err
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.Groq,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		llm.WithTemperature(cfg.Ai.Temperature),
		llm.WithMaxTokens(cfg.Ai.MaxTokens),
	)
	if err != nil {
		store.Close()
		return nil, err
	}
	if cfg.Keys.Groq == "" {
		sysLogger.Warn("BOOTSTRAP", "No API key configured, every reply will be the fallback apology", map[string]interface{}{
			"provider": llmProvider.Name(),
		})
	}
	sysLogger.Info("BOOTSTRAP", "Using LLM provider", map[string]interface{}{
		"provider": llmProvider.Name(),
		"model":    cfg.Ai.LLMModel,
	})

	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogFilePath)
	c, err := NewContainerWith(cfg, store, llmProvider, sysLogger, activityLogger)
	if err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

// NewContainerWith wires the application around an existing store and
// provider.
func NewContainerWith(
	cfg *config.Config,
	store contract.Store,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
	activityLogger logger.ILogger,
) (*Container, error) {
	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 2. Services
	publisherService := service.NewPublisherService(constant.EventTopicActivity, pubSub)
	consumerService := service.NewConsumerService(pubSub, constant.EventTopicActivity, activityLogger, sysLogger)

	uploadService, err := service.NewUploadService(cfg.Upload.Dir, cfg.Upload.MaxBytes, sysLogger)
	if err != nil {
		pubSub.Close()
		return nil, err
	}

	completionService := service.NewCompletionService(
		llmProvider,
		uploadService,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		sysLogger,
	)
	conversationService := service.NewConversationService(store, publisherService, sysLogger)
	messageService := service.NewMessageService(store, completionService, publisherService, sysLogger)
	userService := service.NewUserService(store, publisherService, sysLogger)

	// 3. Controllers
	return &Container{
		ConversationController: controller.NewConversationController(conversationService, cfg.App.DemoUserId),
		MessageController:      controller.NewMessageController(messageService),
		UploadController:       controller.NewUploadController(uploadService, sysLogger),
		UserController:         controller.NewUserController(userService),
		HealthController:       controller.NewHealthController(store.Driver(), completionService.ProviderName()),

		ConsumerService: consumerService,
		Logger:          sysLogger,

		store:          store,
		pubSub:         pubSub,
		activityLogger: activityLogger,
	}, nil
}

// NewStore picks the storage backend by driver name.
func NewStore(driver string, verbose bool) (contract.Store, error) {
	switch driver {
	case memory.Driver, "":
		return memory.NewStore(), nil
	case implementation.Driver:
		return implementation.NewInMemoryStore(verbose)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

func (c *Container) Close() error {
	if err := c.pubSub.Close(); err != nil {
		return err
	}
	_ = c.activityLogger.Sync()
	return c.store.Close()
}
