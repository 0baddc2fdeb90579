package implementation

import (
	"context"
	"testing"

	"riskiq-be/internal/entity"
	"riskiq-be/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CorpusChunk{}))
	return db
}

func chunk(address, doc string, index int, embedding []float32) *entity.CorpusChunk {
	return &entity.CorpusChunk{
		ContentAddress: address,
		DocumentId:     doc,
		ChunkIndex:     index,
		Content:        "passage " + address,
		Embedding:      embedding,
	}
}

func TestUpsertBulkIsIdempotent(t *testing.T) {
	repo := NewCorpusChunkRepository(newTestDB(t))
	ctx := context.Background()

	chunks := []*entity.CorpusChunk{
		chunk("a", "doc-1", 0, []float32{1, 0}),
		chunk("b", "doc-1", 1, []float32{0, 1}),
	}
	require.NoError(t, repo.UpsertBulk(ctx, chunks))
	require.NoError(t, repo.UpsertBulk(ctx, chunks))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestSearchSimilarOrderingAndLimit(t *testing.T) {
	repo := NewCorpusChunkRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertBulk(ctx, []*entity.CorpusChunk{
		chunk("far", "doc-b", 0, []float32{0, 1}),
		chunk("near", "doc-a", 0, []float32{1, 0}),
		// Same similarity as "near": tie must break on document id.
		chunk("tied", "doc-c", 0, []float32{1, 0}),
	}))

	scored, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	require.Equal(t, "doc-a", scored[0].Chunk.DocumentId)
	require.Equal(t, "doc-c", scored[1].Chunk.DocumentId)
	require.GreaterOrEqual(t, scored[0].Similarity, scored[1].Similarity)
}

func TestSearchSurfacesCorruptRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewCorpusChunkRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertBulk(ctx, []*entity.CorpusChunk{
		chunk("good", "doc-1", 0, []float32{1, 0}),
	}))

	// Damage the stored embedding directly, as on-disk corruption would.
	require.NoError(t, db.Model(&model.CorpusChunk{}).
		Where("content_address = ?", "good").
		Update("embedding", datatypes.JSON([]byte("garbage"))).Error)

	_, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0}, 5)
	require.Error(t, err, "a corrupt row must surface, not shrink the result set")
}

func TestSearchSurfacesDimensionMismatch(t *testing.T) {
	repo := NewCorpusChunkRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertBulk(ctx, []*entity.CorpusChunk{
		chunk("a", "doc-1", 0, []float32{1, 0, 0}),
	}))

	_, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0}, 5)
	require.Error(t, err, "a store written by a different embedder must surface, not match nothing")
}

func TestDeleteByDocumentId(t *testing.T) {
	repo := NewCorpusChunkRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.UpsertBulk(ctx, []*entity.CorpusChunk{
		chunk("a", "doc-1", 0, []float32{1, 0}),
		chunk("b", "doc-2", 0, []float32{0, 1}),
	}))

	require.NoError(t, repo.DeleteByDocumentId(ctx, "doc-1"))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
