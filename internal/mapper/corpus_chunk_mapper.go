package mapper

import (
	"encoding/json"
	"fmt"

	"riskiq-be/internal/entity"
	"riskiq-be/internal/model"

	"gorm.io/datatypes"
)

type CorpusChunkMapper struct{}

func NewCorpusChunkMapper() *CorpusChunkMapper {
	return &CorpusChunkMapper{}
}

func (m *CorpusChunkMapper) ToModel(e *entity.CorpusChunk) *model.CorpusChunk {
	embeddingJson, _ := json.Marshal(e.Embedding)
	return &model.CorpusChunk{
		ContentAddress: e.ContentAddress,
		DocumentId:     e.DocumentId,
		ChunkIndex:     e.ChunkIndex,
		SpanStart:      e.SpanStart,
		SpanEnd:        e.SpanEnd,
		Content:        e.Content,
		Embedding:      datatypes.JSON(embeddingJson),
	}
}

func (m *CorpusChunkMapper) ToEntity(mo *model.CorpusChunk) (*entity.CorpusChunk, error) {
	var embedding []float32
	if err := json.Unmarshal(mo.Embedding, &embedding); err != nil {
		return nil, fmt.Errorf("chunk %s: undecodable embedding: %w", mo.ContentAddress, err)
	}
	return &entity.CorpusChunk{
		ContentAddress: mo.ContentAddress,
		DocumentId:     mo.DocumentId,
		ChunkIndex:     mo.ChunkIndex,
		SpanStart:      mo.SpanStart,
		SpanEnd:        mo.SpanEnd,
		Content:        mo.Content,
		Embedding:      embedding,
	}, nil
}
