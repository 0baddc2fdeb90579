package bootstrap

import (
	"log"
	"time"

	"riskiq-be/internal/config"
	"riskiq-be/internal/controller"
	"riskiq-be/internal/pkg/logger"
	"riskiq-be/internal/repository/implementation"
	"riskiq-be/internal/repository/memory"
	"riskiq-be/internal/service"
	"riskiq-be/pkg/assessment/advice"
	"riskiq-be/pkg/assessment/question"
	"riskiq-be/pkg/assessment/scoring"
	"riskiq-be/pkg/assessment/state"
	"riskiq-be/pkg/catalog"
	"riskiq-be/pkg/corpus"
	"riskiq-be/pkg/embedding"
	"riskiq-be/pkg/llm/factory"
	"riskiq-be/pkg/rag/retriever"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssessmentController controller.IAssessmentController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	CorpusIndex     *corpus.Index

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Catalog (immutable, validated at startup)
	cat, err := catalog.Default(cfg.Catalog.Version)
	if err != nil {
		log.Fatalf("[FATAL] Invalid risk catalog: %v", err)
	}
	log.Printf("[INFO] Loaded risk catalog %s (%d categories)", cat.Version, cat.Size())

	// 4. Embedding Provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	}

	// 5. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 6. Corpus index over the persisted vector store
	chunkRepo := implementation.NewCorpusChunkRepository(db)
	corpusIndex := corpus.NewIndex(chunkRepo, embeddingProvider, pubSub, corpus.Config{
		SourceDir:    cfg.Corpus.SourceDir,
		ChunkSize:    cfg.Corpus.ChunkSize,
		ChunkOverlap: cfg.Corpus.ChunkOverlap,
		IngestTopic:  cfg.Ai.IngestTopic,
	}, log.Default())

	// 7. Domain components
	ragRetriever := retriever.NewRetriever(corpusIndex, retriever.Config{
		TopK:                  cfg.Retrieval.TopK,
		MaxContextChars:       cfg.Retrieval.MaxContextChars,
		DedupeOverlapFraction: cfg.Retrieval.DedupeOverlapFraction,
	}, log.Default())

	generator := question.NewGenerator(cat)
	scorer := scoring.NewEngine()
	synthesizer := advice.NewSynthesizer(
		llmProvider,
		time.Duration(cfg.Ai.LLMTimeoutSeconds)*time.Second,
		cfg.Ai.LLMMaxRetries,
		log.Default(),
	)
	stateManager := state.NewManager(log.Default())
	sessionRepo := memory.NewSessionRepository()

	// 8. Services
	consumerService := service.NewConsumerService(pubSub, cfg.Ai.IngestTopic, sysLogger)
	assessmentService := service.NewAssessmentService(
		corpusIndex,
		consumerService,
		ragRetriever,
		generator,
		scorer,
		synthesizer,
		stateManager,
		sessionRepo,
		cat,
	)

	// 9. Controllers
	assessmentController := controller.NewAssessmentController(assessmentService)

	return &Container{
		AssessmentController: assessmentController,
		ConsumerService:      consumerService,
		CorpusIndex:          corpusIndex,
		Logger:               sysLogger,
	}
}
