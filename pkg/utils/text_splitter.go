package utils

import "unicode"

// Span is one chunk of a source text with its rune offsets preserved, so
// downstream consumers can detect overlapping passages from the same document.
type Span struct {
	Text  string
	Start int
	End   int
}

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters. It includes an 'overlap' so no semantic boundary is silently
// lost at a chunk edge. This is a character-based splitter with a naive
// word-boundary snap; ideally, use a tokenizer-aware splitter.
func SplitText(text string, chunkSize int, overlap int) []Span {
	runes := []rune(text)
	totalLen := len(runes)

	if totalLen == 0 {
		return nil
	}
	if totalLen <= chunkSize {
		return []Span{{Text: text, Start: 0, End: totalLen}}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var spans []Span
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		} else {
			end = snapToBoundary(runes, end, i)
		}

		spans = append(spans, Span{
			Text:  string(runes[i:end]),
			Start: i,
			End:   end,
		})

		if end == totalLen {
			break
		}
	}

	return spans
}

// snapToBoundary walks 'end' back to the nearest whitespace so words are not
// cut in half. It only looks back a short distance; if no boundary is found
// the original cut point stands, which is safer than losing data.
func snapToBoundary(runes []rune, end, start int) int {
	const lookback = 32
	limit := end - lookback
	if limit < start+1 {
		limit = start + 1
	}
	for i := end; i > limit; i-- {
		if unicode.IsSpace(runes[i-1]) {
			return i
		}
	}
	return end
}
