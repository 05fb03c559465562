package seqmonad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/seqmonad"
)

func TestClosedForms(t *testing.T) {
	assert.Equal(t, int64(0), seqmonad.TriangularSum(int64(0)))
	assert.Equal(t, int64(4950), seqmonad.TriangularSum(int64(99)))
	assert.Equal(t, int64(0), seqmonad.SquareSum(int64(0)))
	assert.Equal(t, int64(328350), seqmonad.SquareSum(int64(99)))
}

func TestSums_HundredElements(t *testing.T) {
	xs := seqmonad.Iota(100)

	assert.Equal(t, int64(4950), seqmonad.SumOf(xs))
	assert.Equal(t, int64(9900), seqmonad.SumOfDoubles(xs.Clone()))
	assert.Equal(t, int64(328350), seqmonad.SumOfSquares(xs.Clone()))

	// The identity predicates clone internally and must leave xs intact.
	assert.True(t, seqmonad.DoublesIdentity(xs))
	assert.True(t, seqmonad.SquaresIdentity(xs))
	assert.Equal(t, 100, xs.Len())
}

func TestSumConsumption(t *testing.T) {
	xs := seqmonad.Iota(10)
	seqmonad.SumOfSquares(xs)
	assert.True(t, xs.Empty(), "SumOfSquares binds over xs and consumes it")

	ys := seqmonad.Iota(10)
	seqmonad.SumOf(ys)
	assert.Equal(t, 10, ys.Len(), "SumOf folds without consuming")
}

func TestPairwiseIdentity_Exact(t *testing.T) {
	xs := seqmonad.Iota(100)

	// n·Σx² − (Σx)² = 100·328350 − 4950² = 8332500 for 0..99; the pairwise
	// sum must agree exactly, with no overflow at this width.
	require.Equal(t, int64(16665000), seqmonad.SumSquaredDifferences(xs))
	assert.True(t, seqmonad.PairwiseIdentity(xs))
	assert.Equal(t, 100, xs.Len(), "the identity check must not consume xs")
}

func TestPairwiseIdentity_Boundaries(t *testing.T) {
	assert.True(t, seqmonad.PairwiseIdentity(seqmonad.New[int64]()))
	assert.True(t, seqmonad.PairwiseIdentity(seqmonad.Unit(int64(7))))
	assert.True(t, seqmonad.PairwiseIdentity(seqmonad.Of(int64(-3), 5, 11)))
}

func TestIdentities_SmallCounts(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 7} {
		xs := seqmonad.Iota(n)
		assert.True(t, seqmonad.DoublesIdentity(xs), "n=%d", n)
		assert.True(t, seqmonad.SquaresIdentity(xs), "n=%d", n)
		assert.True(t, seqmonad.PairwiseIdentity(xs), "n=%d", n)
	}
}
