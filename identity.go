package seqmonad

// ============================================================================
// Arithmetic Identity Checks
// ============================================================================
//
// The identities below exercise Prod, Fmap and Foldl for non-trivial composed
// computations over int64. The width is deliberate: extreme sequence lengths
// overflow the checks, and surfacing that is part of the demonstration. Do
// not add guards.

// Integer constrains the closed-form helpers to signed integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Square is the squaring endofunctor, x -> Unit(x*x).
func Square(x int64) *List[int64] { return Unit(x * x) }

// Double is the doubling endofunctor, x -> Unit(x+x).
func Double(x int64) *List[int64] { return Unit(x + x) }

func add(x, y int64) int64 { return x + y }
func sub(x, y int64) int64 { return x - y }
func sqr(x int64) int64    { return x * x }

// TriangularSum returns 0+1+...+n == n(n+1)/2.
func TriangularSum[T Integer](n T) T {
	return n * (n + 1) / 2
}

// SquareSum returns 0²+1²+...+n² == n(n+1)(2n+1)/6.
func SquareSum[T Integer](n T) T {
	return n * (n + 1) * (2*n + 1) / 6
}

// SumOf returns the sum of the elements. Does not consume xs.
func SumOf(xs *List[int64]) int64 {
	return Foldl(add, xs, 0)
}

// SumOfDoubles binds the doubling endofunctor over xs and sums the result.
// Consumes xs.
func SumOfDoubles(xs *List[int64]) int64 {
	return Foldl(add, Prod(Double, xs), 0)
}

// SumOfSquares binds the squaring endofunctor over xs and sums the result.
// Consumes xs.
func SumOfSquares(xs *List[int64]) int64 {
	return Foldl(add, Prod(Square, xs), 0)
}

// DoublesIdentity checks the sum of doubles of 0..n-1 against the closed form
// 2·(n-1)n/2. Does not consume xs.
func DoublesIdentity(xs *List[int64]) bool {
	n := int64(xs.Len())
	return SumOfDoubles(xs.Clone()) == 2*TriangularSum(n-1)
}

// SquaresIdentity checks the sum of squares of 0..n-1 against the closed form
// (n-1)n(2n-1)/6. Does not consume xs.
func SquaresIdentity(xs *List[int64]) bool {
	n := int64(xs.Len())
	return SumOfSquares(xs.Clone()) == SquareSum(n-1)
}

// squaredDistances returns the list of (y-x)² for every y in xs, built from
// the combinators alone: compose squaring after subtraction of the pivot,
// then Fmap. The pivot x is the only captured state, and it is read-only.
func squaredDistances(x int64, xs *List[int64]) *List[int64] {
	return Fmap(Dot(sqr, Partial(sub, x)), xs.Clone())
}

// SumSquaredDifferences returns ΣᵢΣⱼ(xᵢ-xⱼ)² over all ordered pairs,
// flattening the per-pivot distance lists with Prod. Does not consume xs.
func SumSquaredDifferences(xs *List[int64]) int64 {
	pairs := Prod(func(x int64) *List[int64] { return squaredDistances(x, xs) }, xs.Clone())
	return Foldl(add, pairs, 0)
}

// PairwiseIdentity checks the relation between the sum of squares and the
// square of the sum (see https://math.stackexchange.com/a/439238):
//
//	n·Σx² - (Σx)² == ½·ΣᵢΣⱼ(xᵢ-xⱼ)²
//
// computationally over all pairs. Does not consume xs. A false result for
// large sequences usually means the int64 arithmetic overflowed, which the
// demonstration reports as such.
func PairwiseIdentity(xs *List[int64]) bool {
	n := int64(xs.Len())
	return n*SumOfSquares(xs.Clone())-sqr(SumOf(xs)) == SumSquaredDifferences(xs)/2
}
