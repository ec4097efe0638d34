package stats

// Folding bundles the functions a Summable is parameterized by.
//
// Seed produces the accumulator from the first accepted value; Combine folds
// every later value into it. Average reduces the accumulator and the count to
// the reported average. Key defines distinct-value equality; when nil the value
// itself is used, which requires T to be comparable at run time.
type Folding[T, U, R any] struct {
	Compare func(a, b T) int
	Key     func(T) any
	Seed    func(v T) U
	Combine func(sum U, v T) U
	Average func(sum U, count int64) R
}

// SummableSnapshot is the finalized read-out of a Summable.
// Sum and Average are nil when Count is zero.
type SummableSnapshot[T, U, R any] struct {
	Snapshot[T]
	Sum     *U `json:"sum,omitempty"`
	Average *R `json:"average,omitempty"`
}

// Summable is an Aggregator that also folds accepted values into a sum.
type Summable[T, U, R any] struct {
	agg    *Aggregator[T]
	fold   Folding[T, U, R]
	sum    U
	hasSum bool
}

// NewSummable creates an empty Summable driven by f.
func NewSummable[T, U, R any](f Folding[T, U, R]) *Summable[T, U, R] {
	key := f.Key
	if key == nil {
		key = func(v T) any { return v }
	}
	return &Summable[T, U, R]{
		agg:  NewKeyed(f.Compare, key),
		fold: f,
	}
}

// Accept folds v into the sum and records it for count, distinct and extrema.
func (s *Summable[T, U, R]) Accept(v T) {
	if s.hasSum {
		s.sum = s.fold.Combine(s.sum, v)
	} else {
		s.sum = s.fold.Seed(v)
		s.hasSum = true
	}
	s.agg.Accept(v)
}

func (s *Summable[T, U, R]) Count() int64 { return s.agg.Count() }
func (s *Summable[T, U, R]) UniqueCount() int64 { return s.agg.UniqueCount() }
func (s *Summable[T, U, R]) Min() (T, bool) { return s.agg.Min() }
func (s *Summable[T, U, R]) Max() (T, bool) { return s.agg.Max() }

// Sum returns the folded sum, or false if nothing was accepted.
func (s *Summable[T, U, R]) Sum() (U, bool) {
	return s.sum, s.hasSum
}

// Average derives the average from the current sum and count.
// It is computed on every call rather than maintained incrementally.
func (s *Summable[T, U, R]) Average() (R, bool) {
	if !s.hasSum {
		var zero R
		return zero, false
	}
	return s.fold.Average(s.sum, s.agg.Count()), true
}

// Snapshot returns the current state as an immutable value.
func (s *Summable[T, U, R]) Snapshot() SummableSnapshot[T, U, R] {
	snap := SummableSnapshot[T, U, R]{Snapshot: s.agg.Snapshot()}
	if sum, ok := s.Sum(); ok {
		snap.Sum = &sum
	}
	if avg, ok := s.Average(); ok {
		snap.Average = &avg
	}
	return snap
}
