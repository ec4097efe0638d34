// Package segment splits text into sentence and word spans.
//
// Two strategies are available for sentences:
//  1. UAX29 - Unicode text segmentation rules (github.com/rivo/uniseg); works for any script
//  2. Prose - punkt-style English sentence boundary detection (github.com/jdkato/prose/v2)
//
// Words are always segmented with the Unicode word boundary rules. Every span is a
// pair of byte offsets into the original text, so callers can resume parsing at
// the exact position a segment starts.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLocale is returned when a segmentation strategy cannot handle a locale.
var ErrUnsupportedLocale = errors.New("segmentation strategy does not support locale")

// Span is a half-open range of byte offsets [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

// Text returns the substring of text covered by s.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}

// Segmenter splits text into an ordered sequence of spans.
// A text with no boundaries yields no spans and no error.
type Segmenter interface {
	Segment(text string) ([]Span, error)

	// Name returns the name of the strategy (for logging)
	Name() string
}

// Kind selects a sentence segmentation strategy.
type Kind int

const (
	// UAX29 uses Unicode sentence boundaries (default)
	UAX29 Kind = iota
	// Prose uses the prose punkt tokenizer, English only
	Prose
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case UAX29:
		return "uax29"
	case Prose:
		return "prose"
	default:
		return "unknown"
	}
}

// ParseKind converts a name such as "uax29" or "prose" to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uax29", "unicode":
		return UAX29, nil
	case "prose":
		return Prose, nil
	default:
		return UAX29, fmt.Errorf("unknown segmenter %q (want uax29 or prose)", name)
	}
}

// NewSentences returns a sentence segmenter of the given kind for tag.
func NewSentences(kind Kind, tag language.Tag) (Segmenter, error) {
	switch kind {
	case UAX29:
		return sentenceSegmenter{}, nil
	case Prose:
		if base, _ := tag.Base(); base.String() != "en" {
			return nil, fmt.Errorf("%w: prose segmentation is English only, got %s", ErrUnsupportedLocale, tag)
		}
		return proseSegmenter{}, nil
	default:
		return nil, fmt.Errorf("unknown segmenter kind %d", int(kind))
	}
}

// NewWords returns a word segmenter for tag.
// Unicode word boundaries do not depend on the locale; the tag is accepted so
// callers always pass their locale explicitly.
func NewWords(language.Tag) Segmenter {
	return wordSegmenter{}
}
