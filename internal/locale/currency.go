package locale

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormat recognizes amounts in the currency of a locale, written either
// as MARKER NUMBER or NUMBER MARKER, with optional spaces in between.
// Markers are the locale's symbol, its narrow symbol and the ISO code.
type CurrencyFormat struct {
	numbers *NumberFormat
	unit    currency.Unit
	markers []string
}

// NewCurrencyFormat creates an amount recognizer for tag. The currency is the
// one used in the tag's region (inferred when the tag has no region).
func NewCurrencyFormat(tag language.Tag) *CurrencyFormat {
	unit, _ := currency.FromTag(tag)
	p := message.NewPrinter(tag)

	seen := make(map[string]bool)
	var markers []string
	for _, m := range []string{
		p.Sprint(currency.Symbol(unit)),
		p.Sprint(currency.NarrowSymbol(unit)),
		unit.String(),
	} {
		m = strings.TrimSpace(m)
		if m != "" && !seen[m] {
			seen[m] = true
			markers = append(markers, m)
		}
	}
	// longest first so "US$" wins over "$"
	sort.SliceStable(markers, func(i, j int) bool { return len(markers[i]) > len(markers[j]) })

	slog.Debug("Currency format initialized", "locale", tag.String(), "currency", unit.String(), "markers", markers)
	return &CurrencyFormat{
		numbers: NewNumberFormat(tag),
		unit:    unit,
		markers: markers,
	}
}

// Unit returns the currency this format recognizes.
func (f *CurrencyFormat) Unit() currency.Unit {
	return f.unit
}

// Parse recognizes an amount starting at pos.
func (f *CurrencyFormat) Parse(text string, pos int) (int, decimal.Decimal, bool) {
	if pos < 0 || pos >= len(text) {
		return pos, decimal.Zero, false
	}

	// marker first: "$200", "USD 200"
	for _, m := range f.markers {
		if !strings.HasPrefix(text[pos:], m) {
			continue
		}
		start := skipBlanks(text, pos+len(m))
		if end, literal, ok := f.numbers.scan(text, start); ok {
			if v, err := decimal.NewFromString(literal); err == nil {
				return end, v, true
			}
		}
	}

	// number first: "200,00 ₽", "200 USD"
	end, literal, ok := f.numbers.scan(text, pos)
	if !ok {
		return pos, decimal.Zero, false
	}
	after := skipBlanks(text, end)
	for _, m := range f.markers {
		if strings.HasPrefix(text[after:], m) {
			v, err := decimal.NewFromString(literal)
			if err != nil {
				return pos, decimal.Zero, false
			}
			return after + len(m), v, true
		}
	}

	return pos, decimal.Zero, false
}

// skipBlanks advances over spaces that may separate an amount from its marker,
// including the no-break spaces many locales print there.
func skipBlanks(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != ' ' && r != '\t' && r != '\u00a0' && r != '\u202f' {
			break
		}
		i += size
	}
	return i
}
