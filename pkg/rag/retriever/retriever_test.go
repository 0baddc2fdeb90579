package retriever

import (
	"context"
	"errors"
	"strings"
	"testing"

	"riskiq-be/pkg/corpus"
)

type fakeQuerier struct {
	results []corpus.Result
	err     error
	gotText string
	gotK    int
}

func (f *fakeQuerier) Query(ctx context.Context, text string, k int) ([]corpus.Result, error) {
	f.gotText = text
	f.gotK = k
	return f.results, f.err
}

func TestRetrieveAssemblesRankedChunks(t *testing.T) {
	q := &fakeQuerier{results: []corpus.Result{
		{DocumentId: "doc-a", ChunkIndex: 0, SpanStart: 0, SpanEnd: 50, Text: "first chunk", Similarity: 0.9},
		{DocumentId: "doc-b", ChunkIndex: 2, SpanStart: 100, SpanEnd: 150, Text: "second chunk", Similarity: 0.8},
	}}
	r := NewRetriever(q, Config{TopK: 5, MaxContextChars: 1000, DedupeOverlapFraction: 0.5}, nil)

	got, err := r.Retrieve(context.Background(), "question", "answer")
	if err != nil {
		t.Fatal(err)
	}

	want := "first chunk\n\nsecond chunk"
	if got != want {
		t.Errorf("context = %q, want %q", got, want)
	}
	if q.gotK != 5 {
		t.Errorf("query k = %d, want 5", q.gotK)
	}
	if !strings.Contains(q.gotText, "question") || !strings.Contains(q.gotText, "answer") {
		t.Errorf("query text missing inputs: %q", q.gotText)
	}
}

func TestRetrieveRespectsCharBudget(t *testing.T) {
	q := &fakeQuerier{results: []corpus.Result{
		{DocumentId: "a", Text: strings.Repeat("x", 60), Similarity: 0.9},
		{DocumentId: "b", SpanStart: 500, SpanEnd: 560, Text: strings.Repeat("y", 60), Similarity: 0.8},
		{DocumentId: "c", SpanStart: 900, SpanEnd: 960, Text: strings.Repeat("z", 60), Similarity: 0.7},
	}}
	r := NewRetriever(q, Config{TopK: 5, MaxContextChars: 130, DedupeOverlapFraction: 0.5}, nil)

	got, err := r.Retrieve(context.Background(), "q", "a")
	if err != nil {
		t.Fatal(err)
	}

	// 60 + 2 + 60 = 122 fits; adding the third (62 more) would not.
	if len(got) > 130 {
		t.Errorf("context %d chars exceeds budget 130", len(got))
	}
	if strings.Contains(got, "z") {
		t.Error("lowest-ranked chunk should have been dropped, not a higher one")
	}
	if !strings.Contains(got, "x") || !strings.Contains(got, "y") {
		t.Error("higher-ranked chunks missing from context")
	}
}

func TestRetrieveDedupesOverlappingSpans(t *testing.T) {
	q := &fakeQuerier{results: []corpus.Result{
		{DocumentId: "doc", ChunkIndex: 0, SpanStart: 0, SpanEnd: 100, Text: "kept passage", Similarity: 0.95},
		// Same document, 80% overlap with the kept span: a near-duplicate.
		{DocumentId: "doc", ChunkIndex: 1, SpanStart: 20, SpanEnd: 120, Text: "duplicate passage", Similarity: 0.94},
		// Same span shape but a different document: not a duplicate.
		{DocumentId: "other", ChunkIndex: 0, SpanStart: 20, SpanEnd: 120, Text: "other doc passage", Similarity: 0.90},
	}}
	r := NewRetriever(q, Config{TopK: 5, MaxContextChars: 1000, DedupeOverlapFraction: 0.5}, nil)

	got, err := r.Retrieve(context.Background(), "q", "a")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(got, "duplicate passage") {
		t.Error("overlapping chunk from same document was not deduplicated")
	}
	if !strings.Contains(got, "kept passage") || !strings.Contains(got, "other doc passage") {
		t.Errorf("context = %q", got)
	}
}

func TestRetrievePropagatesQueryError(t *testing.T) {
	q := &fakeQuerier{err: corpus.ErrIndexNotReady}
	r := NewRetriever(q, Config{}, nil)

	_, err := r.Retrieve(context.Background(), "q", "a")
	if !errors.Is(err, corpus.ErrIndexNotReady) {
		t.Errorf("err = %v, want ErrIndexNotReady", err)
	}
}

func TestSpanOverlapFraction(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       float64
	}{
		{"disjoint", 0, 10, 20, 30, 0},
		{"identical", 0, 10, 0, 10, 1},
		{"half of smaller", 0, 10, 5, 25, 0.5},
		{"touching", 0, 10, 10, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spanOverlapFraction(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("spanOverlapFraction = %f, want %f", got, tt.want)
			}
		})
	}
}
