package retriever

import (
	"context"
	"log"
	"strings"

	"riskiq-be/pkg/corpus"
)

// Querier is the slice of the corpus index the retriever needs.
type Querier interface {
	Query(ctx context.Context, text string, k int) ([]corpus.Result, error)
}

type Config struct {
	TopK            int
	MaxContextChars int
	// Two chunks from the same document whose spans overlap by more than
	// this fraction of the smaller span are near-identical passages; only
	// the higher-ranked one is kept.
	DedupeOverlapFraction float64
}

// Retriever turns a question/answer pair into a bounded block of supporting
// context from the corpus.
type Retriever struct {
	index  Querier
	cfg    Config
	logger *log.Logger
}

func NewRetriever(index Querier, cfg Config, logger *log.Logger) *Retriever {
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.MaxContextChars <= 0 {
		cfg.MaxContextChars = 4000
	}
	if cfg.DedupeOverlapFraction <= 0 {
		cfg.DedupeOverlapFraction = 0.5
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Retriever{index: index, cfg: cfg, logger: logger}
}

// Retrieve queries the index with the combined question and answer text and
// assembles the hits, best first, into a single context block. Assembly stops
// before the character budget is exceeded, so the lowest-ranked chunks are
// the ones dropped.
func (r *Retriever) Retrieve(ctx context.Context, questionText, answerText string) (string, error) {
	query := strings.TrimSpace(questionText + "\n" + answerText)

	results, err := r.index.Query(ctx, query, r.cfg.TopK)
	if err != nil {
		return "", err
	}

	var kept []corpus.Result
	var block strings.Builder
	for _, res := range results {
		if r.isDuplicate(res, kept) {
			continue
		}

		addition := len(res.Text)
		if block.Len() > 0 {
			addition += 2 // separator
		}
		if block.Len()+addition > r.cfg.MaxContextChars {
			break
		}

		if block.Len() > 0 {
			block.WriteString("\n\n")
		}
		block.WriteString(res.Text)
		kept = append(kept, res)
	}

	r.logger.Printf("[RETRIEVAL] Assembled context from %d/%d chunks (%d chars)",
		len(kept), len(results), block.Len())
	return block.String(), nil
}

func (r *Retriever) isDuplicate(candidate corpus.Result, kept []corpus.Result) bool {
	for _, k := range kept {
		if k.DocumentId != candidate.DocumentId {
			continue
		}
		if spanOverlapFraction(candidate.SpanStart, candidate.SpanEnd, k.SpanStart, k.SpanEnd) > r.cfg.DedupeOverlapFraction {
			return true
		}
	}
	return false
}

// spanOverlapFraction returns the overlap of two [start,end) spans as a
// fraction of the smaller span.
func spanOverlapFraction(aStart, aEnd, bStart, bEnd int) float64 {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	overlap := hi - lo
	if overlap <= 0 {
		return 0
	}

	smaller := aEnd - aStart
	if bEnd-bStart < smaller {
		smaller = bEnd - bStart
	}
	if smaller <= 0 {
		return 0
	}
	return float64(overlap) / float64(smaller)
}
