package entity

// CorpusChunk is one embedded passage of a source document. Chunks are
// content-addressed by (document id, span hash), so re-ingesting an
// unchanged document does not rewrite rows.
type CorpusChunk struct {
	ContentAddress string
	DocumentId     string
	ChunkIndex     int
	SpanStart      int
	SpanEnd        int
	Content        string
	Embedding      []float32
}
