package seqmonad_test

import (
	"testing"
	"testing/quick"

	"github.com/Pure-Company/seqmonad"
)

// branching endofunctors for the law tests: one that produces several
// results, one that may produce none. The laws must hold regardless.
func grow(x int64) *seqmonad.List[int64] {
	return seqmonad.Of(x, x*x)
}

func halveEven(x int64) *seqmonad.List[int64] {
	if x%2 == 0 {
		return seqmonad.Unit(x / 2)
	}
	return seqmonad.New[int64]()
}

func TestLeftIdentityLaw(t *testing.T) {
	check := func(x int64) bool {
		return seqmonad.LeftIdentity(grow, x) &&
			seqmonad.LeftIdentity(halveEven, x) &&
			seqmonad.LeftIdentity(seqmonad.Square, x)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}
}

func TestRightIdentityLaw(t *testing.T) {
	check := func(x int64) bool {
		return seqmonad.RightIdentity(x)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}
}

func TestAssociativityLaw(t *testing.T) {
	check := func(x int64) bool {
		return seqmonad.Associativity(seqmonad.Square, seqmonad.Double, x) &&
			seqmonad.Associativity(grow, halveEven, x) &&
			seqmonad.Associativity(halveEven, grow, x)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestLawsOverGeneratedSequence(t *testing.T) {
	xs := seqmonad.Iota(100)

	if !seqmonad.Laws(seqmonad.Square, seqmonad.Double, xs) {
		t.Fatal("monad laws must hold over 0..99")
	}
	if xs.Len() != 100 {
		t.Errorf("the law fold must not consume the sequence, %d elements remain", xs.Len())
	}
}

func TestLawsOverEmptySequence(t *testing.T) {
	if !seqmonad.Laws(seqmonad.Square, seqmonad.Double, seqmonad.New[int64]()) {
		t.Fatal("the law fold over an empty sequence is vacuously true")
	}
}

func TestLawsDetectBrokenTriple(t *testing.T) {
	// A "unit" probe that is not the identity endofunctor breaks left
	// identity; the harness must notice.
	skew := func(x int64) *seqmonad.List[int64] {
		return seqmonad.Unit(x + 1)
	}
	broken := func(x int64) bool {
		return seqmonad.Equal(
			seqmonad.Prod(seqmonad.Square, skew(x)),
			seqmonad.Square(x),
		)
	}
	if broken(1) {
		t.Fatal("a skewed probe must fail left identity")
	}
}
