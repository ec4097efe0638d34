package segment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// proseSegmenter finds English sentence boundaries with prose.
// prose returns sentence text only, so offsets are recovered by locating each
// sentence in the original text after the end of the previous one.
type proseSegmenter struct{}

func (proseSegmenter) Segment(text string) ([]Span, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// only segmentation is needed; skip tokenization, tagging and NER
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("prose segmentation failed: %w", err)
	}

	var spans []Span
	cursor := 0
	for _, sentence := range doc.Sentences() {
		if sentence.Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], sentence.Text)
		if idx < 0 {
			slog.Debug("Sentence not found in source text", "strategy", "prose", "cursor", cursor)
			continue
		}
		start := cursor + idx
		end := start + len(sentence.Text)
		spans = append(spans, Span{Start: start, End: end})
		cursor = end
	}

	slog.Debug("Sentences segmented", "strategy", "prose", "textLength", len(text), "spans", len(spans))
	return spans, nil
}

func (proseSegmenter) Name() string {
	return "prose sentences"
}
