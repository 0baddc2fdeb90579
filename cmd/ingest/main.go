package main

import (
	"context"
	"flag"
	"log"
	"time"

	"riskiq-be/internal/config"
	"riskiq-be/internal/model"
	"riskiq-be/internal/repository/implementation"
	"riskiq-be/pkg/corpus"
	"riskiq-be/pkg/database"
	"riskiq-be/pkg/embedding"

	"github.com/fatih/color"
)

// Offline corpus ingestion. Builds the persisted vector store ahead of time
// so the REST server starts READY instead of ingesting on first boot.
func main() {
	reset := flag.Bool("reset", false, "drop all persisted chunks and re-ingest from scratch")
	purgeDoc := flag.String("purge-doc", "", "drop the persisted chunks of one document id and exit")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Corpus.PersistDir)
	if err != nil {
		log.Fatalf("Unable to open vector store: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.CorpusChunk{}); err != nil {
		log.Fatalf("Unable to migrate vector store: %v", err)
	}

	chunkRepo := implementation.NewCorpusChunkRepository(gormDB)
	ctx := context.Background()

	if *purgeDoc != "" {
		if err := chunkRepo.DeleteByDocumentId(ctx, *purgeDoc); err != nil {
			log.Fatalf("Unable to purge document %s: %v", *purgeDoc, err)
		}
		color.Yellow("⚠ Purged chunks of %s; run with -reset to rebuild the full store", *purgeDoc)
		return
	}

	if *reset {
		color.Yellow("⚠ Resetting vector store at %s", cfg.Corpus.PersistDir)
		if err := chunkRepo.DeleteAll(ctx); err != nil {
			log.Fatalf("Unable to reset vector store: %v", err)
		}
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	} else {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	}

	index := corpus.NewIndex(chunkRepo, embeddingProvider, nil, corpus.Config{
		SourceDir:    cfg.Corpus.SourceDir,
		ChunkSize:    cfg.Corpus.ChunkSize,
		ChunkOverlap: cfg.Corpus.ChunkOverlap,
	}, log.Default())

	color.Cyan("Ingesting corpus from %s ...", cfg.Corpus.SourceDir)
	start := time.Now()

	if err := index.BuildOrLoad(ctx); err != nil {
		color.Red("✗ Ingestion failed: %v", err)
		log.Fatal(err)
	}

	count, err := chunkRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Unable to count chunks: %v", err)
	}

	color.Green("✓ Vector store ready: %d chunks (%s)", count, time.Since(start).Round(time.Millisecond))
}
