package stats

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorEmpty(t *testing.T) {
	agg := New(cmp.Compare[int])

	assert.Equal(t, int64(0), agg.Count())
	assert.Equal(t, int64(0), agg.UniqueCount())

	_, ok := agg.Min()
	assert.False(t, ok)
	_, ok = agg.Max()
	assert.False(t, ok)

	snap := agg.Snapshot()
	assert.Nil(t, snap.Min)
	assert.Nil(t, snap.Max)
}

func TestAggregatorCounts(t *testing.T) {
	tests := []struct {
		name       string
		values     []int
		wantCount  int64
		wantUnique int64
		wantMin    int
		wantMax    int
	}{
		{"single value", []int{4}, 1, 1, 4, 4},
		{"repeated value", []int{5, 3, 5}, 3, 2, 3, 5},
		{"all distinct", []int{9, -1, 0, 7}, 4, 4, -1, 9},
		{"all equal", []int{2, 2, 2, 2}, 4, 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := New(cmp.Compare[int])
			for _, v := range tt.values {
				agg.Accept(v)
			}

			assert.Equal(t, tt.wantCount, agg.Count())
			assert.Equal(t, tt.wantUnique, agg.UniqueCount())

			lo, ok := agg.Min()
			require.True(t, ok)
			assert.Equal(t, tt.wantMin, lo)

			hi, ok := agg.Max()
			require.True(t, ok)
			assert.Equal(t, tt.wantMax, hi)

			for _, v := range tt.values {
				assert.GreaterOrEqual(t, v, lo)
				assert.LessOrEqual(t, v, hi)
			}
		})
	}
}

func TestAggregatorTiesKeepFirstSeen(t *testing.T) {
	// case-insensitive order: equal under the comparator, distinct as values
	agg := New(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	for _, v := range []string{"Beta", "alpha", "ALPHA", "beta", "Alpha"} {
		agg.Accept(v)
	}

	lo, _ := agg.Min()
	hi, _ := agg.Max()
	assert.Equal(t, "alpha", lo)
	assert.Equal(t, "Beta", hi)
	assert.Equal(t, int64(5), agg.UniqueCount(), "distinct set must use value equality, not the comparator")
}

func TestNewKeyed(t *testing.T) {
	type point struct{ x, y int }
	agg := NewKeyed(func(a, b point) int { return cmp.Compare(a.x, b.x) }, func(p point) any { return p.x })

	agg.Accept(point{1, 1})
	agg.Accept(point{1, 2})
	agg.Accept(point{3, 0})

	assert.Equal(t, int64(3), agg.Count())
	assert.Equal(t, int64(2), agg.UniqueCount())

	hi, _ := agg.Max()
	assert.Equal(t, point{3, 0}, hi)
}

func TestSnapshotIsDetached(t *testing.T) {
	agg := New(cmp.Compare[int])
	agg.Accept(10)
	snap := agg.Snapshot()

	agg.Accept(20)
	agg.Accept(1)

	require.NotNil(t, snap.Max)
	assert.Equal(t, 10, *snap.Max)
	assert.Equal(t, 10, *snap.Min)
	assert.Equal(t, int64(1), snap.Count)
}
