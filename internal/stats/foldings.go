package stats

import (
	"cmp"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// NumberStats aggregates plain numbers.
type NumberStats = Summable[float64, float64, float64]

// AmountStats aggregates currency amounts with exact decimal arithmetic.
type AmountStats = Summable[decimal.Decimal, decimal.Decimal, decimal.Decimal]

// DateStats aggregates instants; the sum is nanoseconds since the Unix epoch.
type DateStats = Summable[time.Time, *big.Int, time.Time]

// NumberSnapshot, AmountSnapshot and DateSnapshot are the snapshots of the
// three summable categories.
type (
	NumberSnapshot = SummableSnapshot[float64, float64, float64]
	AmountSnapshot = SummableSnapshot[decimal.Decimal, decimal.Decimal, decimal.Decimal]
	DateSnapshot   = SummableSnapshot[time.Time, *big.Int, time.Time]
)

// Numbers is the folding for real numbers: addition, numeric order, sum/count.
func Numbers() Folding[float64, float64, float64] {
	return Folding[float64, float64, float64]{
		Compare: cmp.Compare[float64],
		Seed:    func(v float64) float64 { return v },
		Combine: func(sum, v float64) float64 { return sum + v },
		Average: func(sum float64, count int64) float64 { return sum / float64(count) },
	}
}

// Amounts is the folding for currency amounts.
// Distinct amounts are keyed by their canonical string so 200 and 200.00 match.
func Amounts() Folding[decimal.Decimal, decimal.Decimal, decimal.Decimal] {
	return Folding[decimal.Decimal, decimal.Decimal, decimal.Decimal]{
		Compare: func(a, b decimal.Decimal) int { return a.Cmp(b) },
		Key:     func(v decimal.Decimal) any { return v.String() },
		Seed:    func(v decimal.Decimal) decimal.Decimal { return v },
		Combine: func(sum, v decimal.Decimal) decimal.Decimal { return sum.Add(v) },
		Average: func(sum decimal.Decimal, count int64) decimal.Decimal {
			return sum.Div(decimal.NewFromInt(count))
		},
	}
}

var nanosPerSecond = big.NewInt(int64(time.Second))

// Dates is the folding for instants. The sum is kept as an arbitrary precision
// count of nanoseconds since the Unix epoch so it never overflows; the average
// is reinterpreted as a UTC instant.
func Dates() Folding[time.Time, *big.Int, time.Time] {
	return Folding[time.Time, *big.Int, time.Time]{
		Compare: func(a, b time.Time) int { return a.Compare(b) },
		Key:     func(t time.Time) any { return [2]int64{t.Unix(), int64(t.Nanosecond())} },
		Seed:    epochNanos,
		Combine: func(sum *big.Int, t time.Time) *big.Int {
			return new(big.Int).Add(sum, epochNanos(t))
		},
		Average: func(sum *big.Int, count int64) time.Time {
			avg := new(big.Int).Quo(sum, big.NewInt(count))
			sec, nsec := new(big.Int).DivMod(avg, nanosPerSecond, new(big.Int))
			return time.Unix(sec.Int64(), nsec.Int64()).UTC()
		},
	}
}

func epochNanos(t time.Time) *big.Int {
	n := big.NewInt(t.Unix())
	n.Mul(n, nanosPerSecond)
	return n.Add(n, big.NewInt(int64(t.Nanosecond())))
}

// NewNumbers, NewAmounts and NewDates are shorthands for the three summable
// categories.
func NewNumbers() *NumberStats { return NewSummable(Numbers()) }
func NewAmounts() *AmountStats { return NewSummable(Amounts()) }
func NewDates() *DateStats { return NewSummable(Dates()) }
