package segment

import (
	"log/slog"

	"github.com/rivo/uniseg"
)

// firstFunc is the shape shared by uniseg.FirstSentenceInString and
// uniseg.FirstWordInString.
type firstFunc func(str string, state int) (segment, rest string, newState int)

// sentenceSegmenter implements UAX #29 sentence boundaries.
type sentenceSegmenter struct{}

func (sentenceSegmenter) Segment(text string) ([]Span, error) {
	spans := scan(text, uniseg.FirstSentenceInString)
	slog.Debug("Sentences segmented", "strategy", "uax29", "textLength", len(text), "spans", len(spans))
	return spans, nil
}

func (sentenceSegmenter) Name() string {
	return "uax29 sentences"
}

// wordSegmenter implements UAX #29 word boundaries.
// Whitespace and punctuation runs come back as their own spans.
type wordSegmenter struct{}

func (wordSegmenter) Segment(text string) ([]Span, error) {
	spans := scan(text, uniseg.FirstWordInString)
	slog.Debug("Words segmented", "strategy", "uax29", "textLength", len(text), "spans", len(spans))
	return spans, nil
}

func (wordSegmenter) Name() string {
	return "uax29 words"
}

// scan walks text segment by segment; the spans are contiguous and cover all of text.
func scan(text string, first firstFunc) []Span {
	var spans []Span

	state := -1
	rest := text
	start := 0
	for len(rest) > 0 {
		var seg string
		seg, rest, state = first(rest, state)
		if seg == "" {
			break // no progress
		}
		end := start + len(seg)
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}

	return spans
}
