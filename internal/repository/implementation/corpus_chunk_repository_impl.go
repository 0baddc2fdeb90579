package implementation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"riskiq-be/internal/entity"
	"riskiq-be/internal/mapper"
	"riskiq-be/internal/model"
	"riskiq-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CorpusChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CorpusChunkMapper
}

func NewCorpusChunkRepository(db *gorm.DB) contract.CorpusChunkRepository {
	return &CorpusChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewCorpusChunkMapper(),
	}
}

func (r *CorpusChunkRepositoryImpl) UpsertBulk(ctx context.Context, chunks []*entity.CorpusChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	models := make([]*model.CorpusChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}

	// The content address is derived from the span text, so a conflicting row
	// is byte-identical and re-ingestion becomes a no-op.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(models, 100).Error
}

func (r *CorpusChunkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CorpusChunk{}).Count(&count).Error
	return count, err
}

func (r *CorpusChunkRepositoryImpl) DeleteByDocumentId(ctx context.Context, documentId string) error {
	return r.db.WithContext(ctx).
		Where("document_id = ?", documentId).
		Delete(&model.CorpusChunk{}).Error
}

func (r *CorpusChunkRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.CorpusChunk{}).Error
}

func (r *CorpusChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, queryEmbedding []float32, limit int) ([]*contract.ScoredCorpusChunk, error) {
	// Brute-force scan. The corpus is a few thousand chunks at most; an ANN
	// index is not worth the moving parts at this scale.
	var models []*model.CorpusChunk
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	// A row that cannot be scored means the store is corrupt or was written
	// by a different embedder; surface it instead of quietly shrinking the
	// result set.
	scored := make([]*contract.ScoredCorpusChunk, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		if len(e.Embedding) != len(queryEmbedding) {
			return nil, fmt.Errorf("chunk %s: embedding dimension %d, query dimension %d",
				e.ContentAddress, len(e.Embedding), len(queryEmbedding))
		}
		scored = append(scored, &contract.ScoredCorpusChunk{
			Chunk:      e,
			Similarity: cosineSimilarity(queryEmbedding, e.Embedding),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		if scored[i].Chunk.DocumentId != scored[j].Chunk.DocumentId {
			return scored[i].Chunk.DocumentId < scored[j].Chunk.DocumentId
		}
		return scored[i].Chunk.ChunkIndex < scored[j].Chunk.ChunkIndex
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
