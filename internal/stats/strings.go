package stats

import "unicode/utf8"

// StringSnapshot is the finalized read-out of a Strings aggregator.
// The length fields are nil when Count is zero.
type StringSnapshot struct {
	Snapshot[string]
	MinLength      *int     `json:"min_length,omitempty"`
	MaxLength      *int     `json:"max_length,omitempty"`
	MinLengthValue *string  `json:"min_length_value,omitempty"`
	MaxLengthValue *string  `json:"max_length_value,omitempty"`
	AverageLength  *float64 `json:"average_length,omitempty"`
}

// Strings aggregates strings: min and max follow the supplied order (usually a
// locale collation) while length extremes are tracked separately in code points.
type Strings struct {
	agg *Aggregator[string]

	minLen, maxLen     int
	minValue, maxValue string
	totalLen           int64
}

// NewStrings creates an empty string aggregator ordered by compare.
func NewStrings(compare func(a, b string) int) *Strings {
	return &Strings{agg: New(compare)}
}

// Accept records s.
// The first string seeds both length extremes; afterwards an extreme only moves
// on a strictly longer or strictly shorter string.
func (s *Strings) Accept(str string) {
	n := utf8.RuneCountInString(str)

	if s.agg.Count() == 0 || n > s.maxLen {
		s.maxLen, s.maxValue = n, str
	}
	if s.agg.Count() == 0 || n < s.minLen {
		s.minLen, s.minValue = n, str
	}
	s.totalLen += int64(n)

	s.agg.Accept(str)
}

func (s *Strings) Count() int64 { return s.agg.Count() }
func (s *Strings) UniqueCount() int64 { return s.agg.UniqueCount() }
func (s *Strings) Min() (string, bool) { return s.agg.Min() }
func (s *Strings) Max() (string, bool) { return s.agg.Max() }

// MinLength returns the shortest length and the first string having it.
func (s *Strings) MinLength() (int, string, bool) {
	return s.minLen, s.minValue, s.agg.Count() > 0
}

// MaxLength returns the longest length and the first string having it.
func (s *Strings) MaxLength() (int, string, bool) {
	return s.maxLen, s.maxValue, s.agg.Count() > 0
}

// AverageLength returns the mean length in code points.
func (s *Strings) AverageLength() (float64, bool) {
	if s.agg.Count() == 0 {
		return 0, false
	}
	return float64(s.totalLen) / float64(s.agg.Count()), true
}

// Snapshot returns the current state as an immutable value.
func (s *Strings) Snapshot() StringSnapshot {
	snap := StringSnapshot{Snapshot: s.agg.Snapshot()}
	if s.agg.Count() == 0 {
		return snap
	}

	minLen, maxLen := s.minLen, s.maxLen
	minValue, maxValue := s.minValue, s.maxValue
	avg, _ := s.AverageLength()

	snap.MinLength, snap.MaxLength = &minLen, &maxLen
	snap.MinLengthValue, snap.MaxLengthValue = &minValue, &maxValue
	snap.AverageLength = &avg
	return snap
}
