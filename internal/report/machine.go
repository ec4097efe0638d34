package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/chriscorrea/textstat/internal/extract"
	"github.com/chriscorrea/textstat/internal/stats"
)

// machineView is the locale-independent report shared by JSON and YAML.
// Amounts are canonical decimal strings and dates are RFC 3339 in UTC.
type machineView struct {
	Source    string             `json:"source" yaml:"source"`
	Locale    string             `json:"locale" yaml:"locale"`
	Currency  string             `json:"currency,omitempty" yaml:"currency,omitempty"`
	Sentences textView           `json:"sentences" yaml:"sentences"`
	Words     textView           `json:"words" yaml:"words"`
	Numbers   valueView[float64] `json:"numbers" yaml:"numbers"`
	Amounts   valueView[string]  `json:"amounts" yaml:"amounts"`
	Dates     valueView[string]  `json:"dates" yaml:"dates"`
}

type textView struct {
	Count          int64    `json:"count" yaml:"count"`
	Unique         int64    `json:"unique" yaml:"unique"`
	Min            *string  `json:"min,omitempty" yaml:"min,omitempty"`
	Max            *string  `json:"max,omitempty" yaml:"max,omitempty"`
	MinLength      *int     `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MinLengthValue *string  `json:"min_length_value,omitempty" yaml:"min_length_value,omitempty"`
	MaxLength      *int     `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	MaxLengthValue *string  `json:"max_length_value,omitempty" yaml:"max_length_value,omitempty"`
	AverageLength  *float64 `json:"average_length,omitempty" yaml:"average_length,omitempty"`
}

type valueView[V any] struct {
	Count   int64 `json:"count" yaml:"count"`
	Unique  int64 `json:"unique" yaml:"unique"`
	Min     *V    `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *V    `json:"max,omitempty" yaml:"max,omitempty"`
	Sum     *V    `json:"sum,omitempty" yaml:"sum,omitempty"`
	Average *V    `json:"average,omitempty" yaml:"average,omitempty"`
}

func newMachineView(opts Options, result extract.Result) machineView {
	return machineView{
		Source:    opts.Source,
		Locale:    opts.Locale.String(),
		Currency:  opts.Currency.String(),
		Sentences: newTextView(result.Sentences),
		Words:     newTextView(result.Words),
		Numbers:   newValueView(result.Numbers, func(f float64) float64 { return f }),
		Amounts:   newValueView(result.Amounts, decimal.Decimal.String),
		Dates:     newValueView(result.Dates, formatInstant),
	}
}

func newTextView(s stats.StringSnapshot) textView {
	return textView{
		Count:          s.Count,
		Unique:         s.UniqueCount,
		Min:            s.Min,
		Max:            s.Max,
		MinLength:      s.MinLength,
		MinLengthValue: s.MinLengthValue,
		MaxLength:      s.MaxLength,
		MaxLengthValue: s.MaxLengthValue,
		AverageLength:  s.AverageLength,
	}
}

func newValueView[T, U, V any](s stats.SummableSnapshot[T, U, T], convert func(T) V) valueView[V] {
	view := valueView[V]{
		Count:   s.Count,
		Unique:  s.UniqueCount,
		Min:     mapPtr(s.Min, convert),
		Max:     mapPtr(s.Max, convert),
		Average: mapPtr(s.Average, convert),
	}
	// only sums of the value type are reported; a date sum is not an instant
	if sum, ok := any(s.Sum).(*T); ok {
		view.Sum = mapPtr(sum, convert)
	}
	return view
}

func mapPtr[T, V any](p *T, convert func(T) V) *V {
	if p == nil {
		return nil
	}
	v := convert(*p)
	return &v
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func writeJSON(w io.Writer, v machineView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v machineView) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write YAML report: %w", err)
	}
	return nil
}
