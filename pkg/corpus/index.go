package corpus

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"riskiq-be/internal/entity"
	"riskiq-be/internal/repository/contract"
	"riskiq-be/pkg/embedding"
	"riskiq-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ErrIndexNotReady is returned by Query before ingestion completes. Callers
// must treat it as transient and retry.
var ErrIndexNotReady = errors.New("corpus index is not ready")

// ErrBuildInProgress is returned when a second BuildOrLoad overlaps a running
// one. The store is single-writer.
var ErrBuildInProgress = errors.New("corpus build already in progress")

type State int32

const (
	StateEmpty State = iota
	StateIngesting
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIngesting:
		return "INGESTING"
	case StateReady:
		return "READY"
	default:
		return "EMPTY"
	}
}

// Result is one retrieved chunk with its similarity to the query.
type Result struct {
	DocumentId string
	ChunkIndex int
	SpanStart  int
	SpanEnd    int
	Text       string
	Similarity float64
}

type Config struct {
	SourceDir    string
	ChunkSize    int
	ChunkOverlap int
	IngestTopic  string
}

// Index owns the embedded corpus. Lifecycle: Empty -> Ingesting -> Ready,
// entered once at process start; reads are only served in Ready.
type Index struct {
	repo      contract.CorpusChunkRepository
	embedder  embedding.EmbeddingProvider
	publisher message.Publisher // optional ingest progress bus
	cfg       Config
	logger    *log.Logger

	buildMu sync.Mutex
	state   atomic.Int32
}

func NewIndex(
	repo contract.CorpusChunkRepository,
	embedder embedding.EmbeddingProvider,
	publisher message.Publisher,
	cfg Config,
	logger *log.Logger,
) *Index {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 500
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Index{
		repo:      repo,
		embedder:  embedder,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

func (ix *Index) State() State {
	return State(ix.state.Load())
}

func (ix *Index) Ready() bool {
	return ix.State() == StateReady
}

// BuildOrLoad brings the index to Ready. If the persisted store already holds
// chunks it is loaded as-is (fast path, the corpus dir is not read);
// otherwise the corpus is scanned, chunked, embedded and upserted. Only one
// build may run at a time.
func (ix *Index) BuildOrLoad(ctx context.Context) error {
	if !ix.buildMu.TryLock() {
		return ErrBuildInProgress
	}
	defer ix.buildMu.Unlock()

	if ix.State() == StateReady {
		return nil
	}
	ix.state.Store(int32(StateIngesting))

	count, err := ix.repo.Count(ctx)
	if err != nil {
		ix.state.Store(int32(StateEmpty))
		return fmt.Errorf("probe vector store: %w", err)
	}

	if count > 0 {
		ix.logger.Printf("[INDEX] Found existing vector store (%d chunks). Loading from disk.", count)
		ix.state.Store(int32(StateReady))
		return nil
	}

	ix.logger.Printf("[INDEX] No vector store found. Ingesting corpus from %s", ix.cfg.SourceDir)
	if err := ix.ingest(ctx); err != nil {
		ix.state.Store(int32(StateEmpty))
		return err
	}

	ix.state.Store(int32(StateReady))
	ix.logger.Printf("[INDEX] Ingestion complete. Index is READY.")
	return nil
}

func (ix *Index) ingest(ctx context.Context) error {
	documents, err := LoadDocuments(ix.cfg.SourceDir)
	if err != nil {
		return err
	}
	if len(documents) == 0 {
		return fmt.Errorf("no documents found in %s", ix.cfg.SourceDir)
	}

	// Nothing is persisted until every document has embedded. A mid-corpus
	// failure leaves the store empty, so the next build re-ingests instead of
	// fast-pathing onto a truncated index.
	var chunks []*entity.CorpusChunk
	chunksPerDoc := make([]int, len(documents))
	for d, doc := range documents {
		spans := utils.SplitText(doc.Text, ix.cfg.ChunkSize, ix.cfg.ChunkOverlap)

		for i, span := range spans {
			res, err := ix.embedder.Generate(span.Text, embedding.TaskDocument)
			if err != nil {
				return fmt.Errorf("embed %s chunk %d: %w", doc.Id, i, err)
			}
			chunks = append(chunks, &entity.CorpusChunk{
				ContentAddress: ChunkAddress(doc.Id, span.Text),
				DocumentId:     doc.Id,
				ChunkIndex:     i,
				SpanStart:      span.Start,
				SpanEnd:        span.End,
				Content:        span.Text,
				Embedding:      res.Embedding.Values,
			})
		}
		chunksPerDoc[d] = len(spans)
	}

	if err := ix.repo.UpsertBulk(ctx, chunks); err != nil {
		return fmt.Errorf("persist corpus: %w", err)
	}

	for d, doc := range documents {
		ix.publishIndexed(doc.Id, chunksPerDoc[d])
	}
	return nil
}

func (ix *Index) publishIndexed(documentId string, chunks int) {
	if ix.publisher == nil {
		return
	}
	payload, err := json.Marshal(DocumentIndexedEvent{DocumentId: documentId, Chunks: chunks})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ix.publisher.Publish(ix.cfg.IngestTopic, msg); err != nil {
		ix.logger.Printf("[WARN] Failed to publish ingest event for %s: %v", documentId, err)
	}
}

// Query embeds the input with the ingestion-time embedder and returns the
// top-k most similar chunks, descending by similarity with a deterministic
// tie-break.
func (ix *Index) Query(ctx context.Context, text string, k int) ([]Result, error) {
	if !ix.Ready() {
		return nil, ErrIndexNotReady
	}

	res, err := ix.embedder.Generate(text, embedding.TaskQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := ix.repo.SearchSimilarWithScore(ctx, res.Embedding.Values, k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	results := make([]Result, len(scored))
	for i, s := range scored {
		results[i] = Result{
			DocumentId: s.Chunk.DocumentId,
			ChunkIndex: s.Chunk.ChunkIndex,
			SpanStart:  s.Chunk.SpanStart,
			SpanEnd:    s.Chunk.SpanEnd,
			Text:       s.Chunk.Content,
			Similarity: s.Similarity,
		}
	}
	return results, nil
}

// ChunkAddress content-addresses a chunk by document id and span text.
func ChunkAddress(documentId, spanText string) string {
	h := sha256.New()
	h.Write([]byte(documentId))
	h.Write([]byte{0})
	h.Write([]byte(spanText))
	return hex.EncodeToString(h.Sum(nil))
}
