package locale

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sampleNumber is formatted in the target locale to discover its separators.
const sampleNumber = 1234567.5

// NumberFormat recognizes plain numbers written with the separators of a locale.
type NumberFormat struct {
	decimal string
	group   string
}

// NewNumberFormat creates a number recognizer for tag.
// The decimal and grouping separators are taken from the way the locale itself
// prints a sample value.
func NewNumberFormat(tag language.Tag) *NumberFormat {
	printed := message.NewPrinter(tag).Sprintf("%.1f", sampleNumber)
	decimal, group := separators(printed)

	slog.Debug("Number format initialized", "locale", tag.String(), "decimal", decimal, "group", group)
	return &NumberFormat{decimal: decimal, group: group}
}

// FormatDecimal writes d rounded to places fraction digits with the locale's
// separators, grouping the integer digits by three. No float conversion is
// involved, so large amounts keep every digit.
func (f *NumberFormat) FormatDecimal(d decimal.Decimal, places int32) string {
	literal := d.StringFixed(places)

	var b strings.Builder
	if strings.HasPrefix(literal, "-") {
		b.WriteByte('-')
		literal = literal[1:]
	}
	integer, fraction, _ := strings.Cut(literal, ".")

	for i := range len(integer) {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteByte(integer[i])
	}
	if fraction != "" {
		b.WriteString(f.decimal)
		b.WriteString(fraction)
	}
	return b.String()
}

// Parse recognizes a number starting at pos.
func (f *NumberFormat) Parse(text string, pos int) (int, float64, bool) {
	end, literal, ok := f.scan(text, pos)
	if !ok {
		return pos, 0, false
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return pos, 0, false
	}
	return end, v, true
}

// scan consumes an optional minus sign, integer digits with grouping separators
// and an optional fraction. It returns the end offset and the number as a plain
// ASCII literal such as "-1234.5".
func (f *NumberFormat) scan(text string, pos int) (int, string, bool) {
	if pos < 0 || pos >= len(text) {
		return pos, "", false
	}

	var b strings.Builder
	i := pos
	if r, size := utf8.DecodeRuneInString(text[i:]); r == '-' || r == '−' {
		b.WriteByte('-')
		i += size
	}
	if i >= len(text) || !isDigit(text[i]) {
		return pos, "", false
	}

	i = f.digits(text, i, &b, f.group)

	// a decimal separator only counts when a digit follows it
	if f.decimal != "" && strings.HasPrefix(text[i:], f.decimal) {
		j := i + len(f.decimal)
		if j < len(text) && isDigit(text[j]) {
			b.WriteByte('.')
			i = f.digits(text, j, &b, "")
		}
	}

	return i, b.String(), true
}

// digits copies ASCII digits from text starting at i into b, skipping grouping
// separators that sit between two digits.
func (f *NumberFormat) digits(text string, i int, b *strings.Builder, group string) int {
	for i < len(text) {
		if isDigit(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}
		if group != "" && strings.HasPrefix(text[i:], group) {
			j := i + len(group)
			if j < len(text) && isDigit(text[j]) {
				i = j
				continue
			}
		}
		break
	}
	return i
}

// separators extracts the decimal and grouping separators from a formatted sample number.
// The last non-digit run is the decimal separator; an earlier one is the group.
func separators(printed string) (decimal, group string) {
	var runs []string
	var cur strings.Builder
	seenDigit := false

	for _, r := range printed {
		if unicode.IsDigit(r) {
			seenDigit = true
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		if seenDigit {
			cur.WriteRune(r)
		}
	}

	switch len(runs) {
	case 0:
		return ".", ""
	case 1:
		return runs[0], ""
	default:
		return runs[len(runs)-1], runs[0]
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
