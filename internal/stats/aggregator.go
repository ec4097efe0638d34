// Package stats provides streaming aggregators for text statistics.
//
// An aggregator consumes one value at a time and keeps a running count, the set
// of distinct values, and the minimum and maximum under a caller-supplied order.
// Two shapes are built on top of the generic core by composition:
//
//   - Summable adds a running sum and an average derived from it (numbers,
//     currency amounts, dates)
//   - Strings adds code point length statistics (sentences, words)
//
// Usage Example:
//
//	numbers := stats.NewSummable(stats.Numbers())
//	numbers.Accept(5)
//	numbers.Accept(3)
//	avg, _ := numbers.Average() // 4
//
// Aggregators are not safe for concurrent use; a document pass owns its own set
// and only the immutable snapshots are meant to be shared.
package stats

// Snapshot is the finalized read-out of an Aggregator.
// Min and Max are nil when Count is zero.
type Snapshot[T any] struct {
	Count       int64 `json:"count"`
	UniqueCount int64 `json:"unique_count"`
	Min         *T    `json:"min,omitempty"`
	Max         *T    `json:"max,omitempty"`
}

// Aggregator tracks count, distinct values and extrema of a stream of values.
// Equality for the distinct set is decided by the key function, ordering by
// the compare function; the two are intentionally independent.
type Aggregator[T any] struct {
	compare func(a, b T) int
	key     func(T) any

	count   int64
	uniques map[any]struct{}
	min     T
	max     T
	seen    bool
}

// New creates an aggregator whose distinct set uses the values themselves.
func New[T comparable](compare func(a, b T) int) *Aggregator[T] {
	return NewKeyed(compare, func(v T) any { return v })
}

// NewKeyed creates an aggregator whose distinct set uses key(v) for equality.
// key must return a comparable value.
func NewKeyed[T any](compare func(a, b T) int, key func(T) any) *Aggregator[T] {
	return &Aggregator[T]{
		compare: compare,
		key:     key,
		uniques: make(map[any]struct{}),
	}
}

// Accept records one occurrence of v.
// Ties keep the incumbent: max is only replaced by a strictly greater value,
// min only by a strictly lesser one.
func (a *Aggregator[T]) Accept(v T) {
	a.count++
	a.uniques[a.key(v)] = struct{}{}

	if !a.seen {
		a.min, a.max = v, v
		a.seen = true
		return
	}
	if a.compare(v, a.max) > 0 {
		a.max = v
	}
	if a.compare(v, a.min) < 0 {
		a.min = v
	}
}

// Count returns the number of accepted values.
func (a *Aggregator[T]) Count() int64 {
	return a.count
}

// UniqueCount returns the number of distinct accepted values.
func (a *Aggregator[T]) UniqueCount() int64 {
	return int64(len(a.uniques))
}

// Min returns the smallest accepted value, or false if nothing was accepted.
func (a *Aggregator[T]) Min() (T, bool) {
	return a.min, a.seen
}

// Max returns the largest accepted value, or false if nothing was accepted.
func (a *Aggregator[T]) Max() (T, bool) {
	return a.max, a.seen
}

// Snapshot returns the current state as an immutable value.
func (a *Aggregator[T]) Snapshot() Snapshot[T] {
	s := Snapshot[T]{
		Count:       a.count,
		UniqueCount: a.UniqueCount(),
	}
	if a.seen {
		lo, hi := a.min, a.max
		s.Min, s.Max = &lo, &hi
	}
	return s
}
