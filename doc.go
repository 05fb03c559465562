/*
Package seqmonad builds a Kleisli triple over a singly-linked sequence and
verifies that it really is a monad.

# Overview

Seqmonad provides a generic, ordered, mutable sequence container List[T]
together with exactly two primitive operations:

  - Unit: wrap a value as a one-element sequence
  - Prod: apply an endofunctor to every element and concatenate the results
    in order (the infamous "bind")

Everything else — Join, Fmap, Foldl — is derived from those two, demonstrating
that ordinary flattening and mapping are not primitives of the algebra.

# Core Concepts

Sequences are consumed by bind. Prod drains its input list while building its
output, so the caller transfers ownership:

	xs := seqmonad.Iota(10)
	ys := seqmonad.Prod(double, xs) // xs is now empty

	// Need xs afterward? Clone first.
	ys := seqmonad.Prod(double, xs.Clone())

Endofunctors are plain generic function values, no interfaces and no dynamic
dispatch:

	square := func(x int64) *seqmonad.List[int64] {
	    return seqmonad.Unit(x * x)
	}

# The Laws

The triple (List, Unit, Prod) satisfies the three monad laws, and the package
ships the predicates to prove it over any tested domain:

	f := square
	g := double

	seqmonad.LeftIdentity(f, x)      // Prod(f, Unit(x)) == f(x)
	seqmonad.RightIdentity[int64](x) // Prod(Pure, Unit(x)) == Unit(x)
	seqmonad.Associativity(f, g, x)

	// Fold the conjunction over a whole sequence:
	seqmonad.Laws(f, g, seqmonad.Iota(100))

Pure is a separately named probe identical to Unit; the right-identity law
needs unit both as constructor and as the probed endofunctor, and two names
keep those roles apart.

# Arithmetic Identities

As a sanity check on the constructed algebra, the package computes classic
aggregate identities entirely through the combinators:

	foldl(add, prod(double, 0..n-1)) == 2 * (n-1)n/2
	foldl(add, prod(square, 0..n-1)) == (n-1)n(2n-1)/6
	n*Σx² - (Σx)² == ½ ΣᵢΣⱼ (xᵢ-xⱼ)²

Arithmetic is deliberately int64: push the sequence length far enough and the
identities fail by overflow, which the demonstration surfaces rather than
prevents.

# Demonstration Binary

cmd/monadplay runs the full show: generate 0..n-1, fold the three laws over
it, then print pass/fail lines for the arithmetic identities.

	monadplay --count 100
	monadplay --count 100 --verbose  # per-law debug logging
	monadplay --count 100 --strict   # nonzero exit on any failed check

# Package Import

	import "github.com/Pure-Company/seqmonad"
*/
package seqmonad
