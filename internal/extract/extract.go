// Package extract recognizes typed tokens in a document and folds them into statistics.
//
// Extract drives two passes over the text:
//  1. Sentence pass - every non-blank sentence span goes to the sentence aggregator
//  2. Word pass - every non-blank word span starting with a letter goes to the word
//     aggregator; at the start of every non-blank word span a currency amount, a
//     number and a date are each tried independently
//
// Segmentation, parsing and string ordering are supplied by the caller through
// Collaborators, so the same pass works for any locale.
//
// Usage Example:
//
//	result, err := extract.Extract(text, collaborators)
//	fmt.Println(result.Numbers.Count)
package extract

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/chriscorrea/textstat/internal/segment"
	"github.com/chriscorrea/textstat/internal/stats"
)

// ParseFunc tries to recognize a token of one kind starting at byte offset pos.
// It returns the offset just past the token, the value and true, or false when
// nothing is recognized at pos.
type ParseFunc[T any] func(text string, pos int) (next int, value T, ok bool)

// Collaborators are the locale-bound capabilities an extraction pass consumes.
type Collaborators struct {
	Sentences segment.Segmenter
	Words     segment.Segmenter
	Numbers   ParseFunc[float64]
	Amounts   ParseFunc[decimal.Decimal]
	Dates     ParseFunc[time.Time]
	Compare   func(a, b string) int
}

// Result bundles the final snapshots of the five categories.
type Result struct {
	Sentences stats.StringSnapshot `json:"sentences"`
	Words     stats.StringSnapshot `json:"words"`
	Numbers   stats.NumberSnapshot `json:"numbers"`
	Amounts   stats.AmountSnapshot `json:"amounts"`
	Dates     stats.DateSnapshot   `json:"dates"`
}

// Count returns the number of tokens recognized for c.
func (r Result) Count(c Category) int64 {
	switch c {
	case Sentences:
		return r.Sentences.Count
	case Words:
		return r.Words.Count
	case Numbers:
		return r.Numbers.Count
	case Amounts:
		return r.Amounts.Count
	case Dates:
		return r.Dates.Count
	default:
		return 0
	}
}

// Unique returns the number of distinct tokens recognized for c.
func (r Result) Unique(c Category) int64 {
	switch c {
	case Sentences:
		return r.Sentences.UniqueCount
	case Words:
		return r.Words.UniqueCount
	case Numbers:
		return r.Numbers.UniqueCount
	case Amounts:
		return r.Amounts.UniqueCount
	case Dates:
		return r.Dates.UniqueCount
	default:
		return 0
	}
}

// pass holds the running aggregators of one document.
type pass struct {
	text string
	c    Collaborators

	sentences *stats.Strings
	words     *stats.Strings
	numbers   *stats.NumberStats
	amounts   *stats.AmountStats
	dates     *stats.DateStats
}

// Extract runs one pass over text and returns the category snapshots.
// Unrecognized text is skipped; only a failing segmenter produces an error.
func Extract(text string, c Collaborators) (Result, error) {
	p := &pass{
		text:      text,
		c:         c,
		sentences: stats.NewStrings(c.Compare),
		words:     stats.NewStrings(c.Compare),
		numbers:   stats.NewNumbers(),
		amounts:   stats.NewAmounts(),
		dates:     stats.NewDates(),
	}

	if err := p.eachToken(c.Sentences, p.handleSentence); err != nil {
		return Result{}, fmt.Errorf("sentence segmentation failed: %w", err)
	}
	if err := p.eachToken(c.Words, p.handleWord); err != nil {
		return Result{}, fmt.Errorf("word segmentation failed: %w", err)
	}

	result := Result{
		Sentences: p.sentences.Snapshot(),
		Words:     p.words.Snapshot(),
		Numbers:   p.numbers.Snapshot(),
		Amounts:   p.amounts.Snapshot(),
		Dates:     p.dates.Snapshot(),
	}

	slog.Debug("Extraction completed",
		"sentences", result.Sentences.Count,
		"words", result.Words.Count,
		"numbers", result.Numbers.Count,
		"amounts", result.Amounts.Count,
		"dates", result.Dates.Count)
	return result, nil
}

// eachToken calls handle for every span of seg whose trimmed text is not empty.
// handle receives the untrimmed start offset and the trimmed text.
func (p *pass) eachToken(seg segment.Segmenter, handle func(start int, token string)) error {
	spans, err := seg.Segment(p.text)
	if err != nil {
		return err
	}
	slog.Debug("Text segmented", "segmenter", seg.Name(), "spans", len(spans))

	for _, span := range spans {
		token := strings.TrimSpace(span.Text(p.text))
		if token == "" {
			continue
		}
		handle(span.Start, token)
	}
	return nil
}

func (p *pass) handleSentence(_ int, sentence string) {
	p.sentences.Accept(sentence)
}

// handleWord counts letter-initial words, then tries every summable category at
// start. The attempts are independent: a token may count as more than one kind.
func (p *pass) handleWord(start int, word string) {
	if r, _ := utf8.DecodeRuneInString(word); unicode.IsLetter(r) {
		p.words.Accept(word)
	}

	tryParse(p.text, start, p.c.Amounts, p.amounts.Accept)
	tryParse(p.text, start, p.c.Numbers, p.numbers.Accept)
	tryParse(p.text, start, p.c.Dates, p.dates.Accept)
}

// tryParse feeds accept with the value parse recognizes at pos, if any.
// A parser that reports success without consuming input is treated as no match.
func tryParse[T any](text string, pos int, parse ParseFunc[T], accept func(T)) {
	if parse == nil {
		return
	}
	next, v, ok := parse(text, pos)
	if !ok || next <= pos {
		return
	}
	accept(v)
}
