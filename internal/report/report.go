// Package report renders extraction results for people and for machines.
//
// The text and markdown formats are localized: labels come from a message
// catalog with English and Russian entries, and counts, numbers, amounts and
// dates are formatted for the output locale. JSON and YAML share one
// locale-independent view.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/chriscorrea/textstat/internal/extract"
	"github.com/chriscorrea/textstat/internal/locale"
	"github.com/chriscorrea/textstat/internal/stats"
)

// Options control how a report is rendered.
type Options struct {
	Format Format
	// Locale is the output locale
	Locale language.Tag
	// Source names the analyzed input in the header
	Source string
	// Currency is the unit amounts were written in; derived from Locale when zero
	Currency currency.Unit
}

// Write renders result to w.
func Write(w io.Writer, opts Options, result extract.Result) error {
	if opts.Currency == (currency.Unit{}) {
		opts.Currency, _ = currency.FromTag(opts.Locale)
	}

	switch opts.Format {
	case Text:
		return writeText(w, newLocalizer(opts).document(result))
	case Markdown:
		return writeMarkdown(w, newLocalizer(opts), result)
	case JSON:
		return writeJSON(w, newMachineView(opts, result))
	case YAML:
		return writeYAML(w, newMachineView(opts, result))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(opts.Format))
	}
}

// row is one labelled value of a block
type row struct {
	label string
	value string
}

// block is a titled group of rows
type block struct {
	title string
	rows  []row
}

// document is a localized report ready for layout
type document struct {
	title  string
	blocks []block
}

// localizer turns statistics into localized labels and values
type localizer struct {
	p       *message.Printer
	numbers *locale.NumberFormat
	unit    currency.Unit
	source  string
}

func newLocalizer(opts Options) *localizer {
	return &localizer{
		p:       newPrinter(opts.Locale),
		numbers: locale.NewNumberFormat(opts.Locale),
		unit:    opts.Currency,
		source:  opts.Source,
	}
}

func (l *localizer) document(result extract.Result) document {
	doc := document{
		title: fmt.Sprintf("%s %q", l.p.Sprintf(keyAnalyzedFile), l.source),
	}

	summary := block{title: l.p.Sprintf(keySummary)}
	for _, c := range extract.Categories {
		summary.rows = append(summary.rows, row{
			label: l.p.Sprintf(categoryLabels[c].count),
			value: l.integer(result.Count(c)),
		})
	}
	doc.blocks = append(doc.blocks, summary)

	for _, c := range extract.Categories {
		doc.blocks = append(doc.blocks, l.category(c, result))
	}
	return doc
}

func (l *localizer) category(c extract.Category, result extract.Result) block {
	keys := categoryLabels[c]
	b := block{title: l.p.Sprintf(keys.header)}

	count := l.integer(result.Count(c))
	if result.Count(c) > 0 {
		count += " (" + l.p.Sprintf(keys.different, result.Unique(c)) + ")"
	}
	b.add(l.p.Sprintf(keys.count), count)

	switch c {
	case extract.Sentences:
		l.textual(&b, keys, result.Sentences)
	case extract.Words:
		l.textual(&b, keys, result.Words)
	case extract.Numbers:
		summable(l, &b, keys, result.Numbers, l.number)
	case extract.Amounts:
		summable(l, &b, keys, result.Amounts, l.amount)
	case extract.Dates:
		summable(l, &b, keys, result.Dates, l.date)
	}
	return b
}

func (b *block) add(label, value string) {
	b.rows = append(b.rows, row{label: label, value: value})
}

func (l *localizer) textual(b *block, keys labels, s stats.StringSnapshot) {
	b.add(l.p.Sprintf(keys.min), orNone(l, s.Min, quote))
	b.add(l.p.Sprintf(keys.max), orNone(l, s.Max, quote))
	b.add(l.p.Sprintf(keys.maxLength), l.lengthWithValue(s.MaxLength, s.MaxLengthValue))
	b.add(l.p.Sprintf(keys.minLength), l.lengthWithValue(s.MinLength, s.MinLengthValue))
	b.add(l.p.Sprintf(keys.average), orNone(l, s.AverageLength, l.number))
}

// summable adds the min, max and average rows of a summable category
func summable[T, U any](l *localizer, b *block, keys labels, s stats.SummableSnapshot[T, U, T], format func(T) string) {
	b.add(l.p.Sprintf(keys.min), orNone(l, s.Min, format))
	b.add(l.p.Sprintf(keys.max), orNone(l, s.Max, format))
	b.add(l.p.Sprintf(keys.average), orNone(l, s.Average, format))
}

func (l *localizer) lengthWithValue(length *int, value *string) string {
	if length == nil || value == nil {
		return l.none()
	}
	return fmt.Sprintf("%s (%s)", l.integer(int64(*length)), quote(*value))
}

// orNone formats *v, or the localized "none" value when v is absent
func orNone[T any](l *localizer, v *T, format func(T) string) string {
	if v == nil {
		return l.none()
	}
	return format(*v)
}

func (l *localizer) none() string {
	return l.p.Sprintf(keyNone)
}

func (l *localizer) integer(n int64) string {
	return l.p.Sprint(number.Decimal(n))
}

func (l *localizer) number(v float64) string {
	return l.p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// amount writes the currency symbol and v with the currency's standard number
// of fraction digits.
func (l *localizer) amount(v decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(l.unit)
	return l.p.Sprint(currency.Symbol(l.unit)) + " " + l.numbers.FormatDecimal(v, int32(scale))
}

func (l *localizer) date(t time.Time) string {
	return l.p.Sprintf(keyFullDate,
		l.p.Sprintf(t.Weekday().String()),
		l.p.Sprintf(t.Month().String()),
		strconv.Itoa(t.Day()),
		strconv.Itoa(t.Year()))
}

// quote wraps s in double quotes with its line breaks written as \n
func quote(s string) string {
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
