// Package locale binds text recognition to an explicit locale.
//
// Every constructor takes a language.Tag; nothing in this package reads or
// changes a process-wide default locale. The package provides:
//   - Parse, which turns identifiers like "en_US" or "ru-RU" into tags
//   - NewCollator, a locale-aware string order
//   - NumberFormat, CurrencyFormat and DateFormat, which recognize a token
//     starting at a given byte offset and report where it ends
//
// All parsers share the same contract: Parse(text, pos) returns the offset just
// past the consumed token, the value, and true; or pos, the zero value and false
// when nothing at pos can be recognized. A non-match is never an error.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrInvalidLocale is returned for malformed or unknown locale identifiers.
var ErrInvalidLocale = errors.New("invalid locale")

// Parse converts a locale identifier into a language tag.
// Identifiers use up to three "_"-separated parts (language, region, variant),
// e.g. "en", "en_US", "de_CH_1996"; BCP 47 forms such as "en-US" are accepted too.
func Parse(id string) (language.Tag, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return language.Und, fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
	}

	parts := strings.Split(strings.ReplaceAll(id, "-", "_"), "_")
	if len(parts) > 3 {
		return language.Und, fmt.Errorf("%w: %q has more than three parts", ErrInvalidLocale, id)
	}
	for _, p := range parts {
		if p == "" {
			return language.Und, fmt.Errorf("%w: %q has an empty part", ErrInvalidLocale, id)
		}
	}

	tag, err := language.Parse(strings.Join(parts, "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, id, err)
	}
	return tag, nil
}

// NewCollator returns a comparison function ordering strings by the collation
// rules of tag. The result is not safe for concurrent use.
func NewCollator(tag language.Tag) func(a, b string) int {
	c := collate.New(tag)
	return c.CompareString
}
