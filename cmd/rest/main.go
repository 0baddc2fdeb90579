package main

import (
	"context"
	"log"

	"riskiq-be/internal/bootstrap"
	"riskiq-be/internal/config"
	"riskiq-be/internal/model"
	"riskiq-be/internal/server"
	"riskiq-be/internal/tracer"
	"riskiq-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Vector Store
	gormDB, err := database.NewGormDB(cfg.Corpus.PersistDir)
	if err != nil {
		log.Panicf("Unable to open vector store: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.CorpusChunk{}); err != nil {
		log.Panicf("Unable to migrate vector store: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	container.Logger.Info("boot", "Service starting", map[string]interface{}{
		"port":        cfg.App.Port,
		"environment": cfg.App.Environment,
		"corpus_dir":  cfg.Corpus.SourceDir,
		"persist_dir": cfg.Corpus.PersistDir,
	})

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// The index builds (or loads) in the background; requests arriving before
	// it is ready get a retryable 503 from the service layer.
	go func() {
		if err := container.CorpusIndex.BuildOrLoad(context.Background()); err != nil {
			log.Printf("Background Index Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
