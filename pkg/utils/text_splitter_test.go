package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
		overlap   int
		wantCount int
	}{
		{
			name:      "empty input",
			text:      "",
			chunkSize: 100,
			overlap:   10,
			wantCount: 0,
		},
		{
			name:      "short text single span",
			text:      "one small document",
			chunkSize: 100,
			overlap:   10,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(spans) != tt.wantCount {
				t.Errorf("span count = %d, want %d", len(spans), tt.wantCount)
			}
		})
	}
}

func TestSplitTextOffsetsMatchSource(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 60)
	spans := SplitText(text, 100, 20)
	if len(spans) < 2 {
		t.Fatalf("expected multiple spans, got %d", len(spans))
	}

	runes := []rune(text)
	for i, span := range spans {
		if got := string(runes[span.Start:span.End]); got != span.Text {
			t.Errorf("span %d text does not match source offsets [%d:%d]", i, span.Start, span.End)
		}
	}

	// Consecutive spans must overlap: no part of the source is lost.
	for i := 1; i < len(spans); i++ {
		if spans[i].Start > spans[i-1].End {
			t.Errorf("gap between span %d (end %d) and span %d (start %d)",
				i-1, spans[i-1].End, i, spans[i].Start)
		}
	}

	if last := spans[len(spans)-1]; last.End != len(runes) {
		t.Errorf("last span ends at %d, want %d", last.End, len(runes))
	}
}

func TestSplitTextOverlapGreaterThanChunkSize(t *testing.T) {
	text := strings.Repeat("word ", 200)
	// Pathological config must not loop forever or produce zero-width steps.
	spans := SplitText(text, 50, 60)
	if len(spans) == 0 {
		t.Fatal("expected spans")
	}
}
