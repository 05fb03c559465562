package seqmonad

// ============================================================================
// Monad Law Verification
// ============================================================================

// Endofunctor is a function from a value to a sequence of the same type,
// representing a computation that may produce zero or more results. The
// monad laws quantify over these.
type Endofunctor[T any] func(T) *List[T]

// LeftIdentity checks Prod(f, Unit(x)) == f(x): binding a single wrapped
// value is the same as applying the endofunctor directly.
func LeftIdentity[T comparable](f Endofunctor[T], x T) bool {
	return Equal(Prod(f, Unit(x)), f(x))
}

// RightIdentity checks Prod(Pure, Unit(x)) == Unit(x): binding unit itself
// changes nothing. Pure is the disambiguated probe name for Unit.
func RightIdentity[T comparable](x T) bool {
	return Equal(Prod(Pure[T], Unit(x)), Unit(x))
}

// Associativity checks
//
//	Prod(f, Prod(g, Unit(x))) == Prod(y -> Prod(f, g(y)), Unit(x))
//
// for the probed value x: the grouping of successive binds is immaterial.
func Associativity[T comparable](f, g Endofunctor[T], x T) bool {
	lhs := Prod(f, Prod(g, Unit(x)))
	rhs := Prod(func(y T) *List[T] { return Prod(f, g(y)) }, Unit(x))
	return Equal(lhs, rhs)
}

// Laws folds the conjunction of all three laws over every element of xs and
// reports whether the triple behaves as a monad across the whole tested
// domain. All three predicates are pure, so short-circuiting is immaterial.
// Laws does not consume xs.
func Laws[T comparable](f, g Endofunctor[T], xs *List[T]) bool {
	return Foldl(func(ok bool, x T) bool {
		return ok && LeftIdentity(f, x) && RightIdentity(x) && Associativity(f, g, x)
	}, xs, true)
}
