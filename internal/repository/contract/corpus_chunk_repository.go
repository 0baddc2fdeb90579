package contract

import (
	"context"

	"riskiq-be/internal/entity"
)

// ScoredCorpusChunk wraps CorpusChunk with its similarity score
type ScoredCorpusChunk struct {
	Chunk      *entity.CorpusChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type CorpusChunkRepository interface {
	UpsertBulk(ctx context.Context, chunks []*entity.CorpusChunk) error
	Count(ctx context.Context) (int64, error)
	DeleteByDocumentId(ctx context.Context, documentId string) error
	DeleteAll(ctx context.Context) error
	// SearchSimilarWithScore returns the chunks most similar to the query
	// embedding, descending by similarity, ties broken by document id then
	// chunk index so identical inputs yield identical orderings.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredCorpusChunk, error)
}
