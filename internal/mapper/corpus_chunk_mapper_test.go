package mapper

import (
	"testing"

	"riskiq-be/internal/entity"
	"riskiq-be/internal/model"

	"gorm.io/datatypes"
)

func TestCorpusChunkRoundTrip(t *testing.T) {
	m := NewCorpusChunkMapper()
	in := &entity.CorpusChunk{
		ContentAddress: "abc123",
		DocumentId:     "risks.txt",
		ChunkIndex:     2,
		SpanStart:      100,
		SpanEnd:        160,
		Content:        "some passage",
		Embedding:      []float32{0.1, 0.2, 0.3},
	}

	out, err := m.ToEntity(m.ToModel(in))
	if err != nil {
		t.Fatal(err)
	}

	if out.ContentAddress != in.ContentAddress ||
		out.DocumentId != in.DocumentId ||
		out.ChunkIndex != in.ChunkIndex ||
		out.SpanStart != in.SpanStart ||
		out.SpanEnd != in.SpanEnd ||
		out.Content != in.Content {
		t.Errorf("round trip mutated fields: %+v", out)
	}
	if len(out.Embedding) != len(in.Embedding) {
		t.Fatalf("embedding length = %d, want %d", len(out.Embedding), len(in.Embedding))
	}
	for i := range in.Embedding {
		if out.Embedding[i] != in.Embedding[i] {
			t.Errorf("embedding[%d] = %f, want %f", i, out.Embedding[i], in.Embedding[i])
		}
	}
}

func TestToEntityUndecodableEmbedding(t *testing.T) {
	m := NewCorpusChunkMapper()
	mo := &model.CorpusChunk{
		ContentAddress: "abc123",
		DocumentId:     "risks.txt",
		Embedding:      datatypes.JSON([]byte("garbage")),
	}

	if _, err := m.ToEntity(mo); err == nil {
		t.Fatal("expected error for undecodable embedding")
	}
}
