// Package seqmonad provides a generic sequence container and the Kleisli
// triple (List, Unit, Prod) built on top of it.
//
// See doc.go for the full package documentation.
package seqmonad

import (
	"fmt"
	"strings"
)

// ============================================================================
// List Container
// ============================================================================

type node[T any] struct {
	val  T
	next *node[T]
}

// List is an ordered, finite, mutable singly-linked sequence.
//
// Lists are owned by whichever scope holds them: Prod, Join and Fmap drain
// their input list while building their output, and Splice empties its
// argument. Callers that need a list after handing it to one of those
// operations must Clone it first.
//
// The zero value is not usable; construct lists with New, Of, Unit or Iota.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list containing vals in the given order.
//
// Example:
//
//	xs := seqmonad.Of(1, 2, 3)
func Of[T any](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

// Iota returns the list 0, 1, ..., n-1 over int64.
//
// This is the generated input sequence of the demonstration. The element type
// is deliberately int64: large enough for the shipped sequence lengths, small
// enough that extreme lengths overflow the arithmetic identity checks.
func Iota(n int64) *List[int64] {
	l := New[int64]()
	for i := int64(0); i < n; i++ {
		l.PushBack(i)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element without removing it.
// The second return value is false when the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// PushBack appends v to the end of the list.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element.
// The second return value is false when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	n.next = nil
	return n.val, true
}

// Splice moves all elements of other to the end of l, in order, leaving
// other empty. No nodes are copied; this is an O(1) pointer transfer.
//
// Example:
//
//	a := seqmonad.Of(1, 2)
//	b := seqmonad.Of(3, 4)
//	a.Splice(b) // a is [1 2 3 4], b is empty
func (l *List[T]) Splice(other *List[T]) {
	if other == nil || other.head == nil {
		return
	}
	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
	}
	l.tail = other.tail
	l.size += other.size
	other.head = nil
	other.tail = nil
	other.size = 0
}

// Clone returns an independent copy of the list.
//
// Clone is the escape hatch from consumption semantics: pass xs.Clone() to
// Prod when xs must survive the call.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.val)
	}
	return out
}

// Each calls fn for every element in order.
func (l *List[T]) Each(fn func(T)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.val)
	}
}

// ToSlice returns the elements as a slice, in order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// String implements fmt.Stringer.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.val)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b contain equal elements in the same order.
// Nil lists compare equal to empty ones.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable (nested lists, functions).
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	an, bn := listHead(a), listHead(b)
	for an != nil && bn != nil {
		if !eq(an.val, bn.val) {
			return false
		}
		an, bn = an.next, bn.next
	}
	return an == nil && bn == nil
}

func listHead[T any](l *List[T]) *node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// ============================================================================
// The Kleisli Triple: Unit and Prod
// ============================================================================

// Unit wraps a value as a one-element list. It is the identity endofunctor of
// the algebra, the "pure" constructor. Total, never fails, no side effects.
func Unit[T any](v T) *List[T] {
	l := New[T]()
	l.PushBack(v)
	return l
}

// Pure is Unit under a second name.
//
// The right-identity law probes unit itself through Prod, so unit plays two
// roles at once: the constructor of the probe sequence and the endofunctor
// being probed. A separate name keeps those roles apart where a single
// overloaded symbol would be ambiguous.
func Pure[T any](v T) *List[T] {
	return Unit(v)
}

// Prod is bind: it applies f to every element of xs and returns the
// concatenation of the results in input order. Prod consumes xs — the list is
// drained as it is processed and the caller must not reuse it.
//
// An empty input yields an empty output without invoking f. Single-element
// input performs exactly one application of f.
//
// The accumulation is an explicit loop over PopFront and Splice rather than
// the recursive fold-right formulation: recursion depth equal to input length
// is a stack-overflow hazard, not a style choice.
//
// Example:
//
//	double := func(x int64) *seqmonad.List[int64] {
//	    return seqmonad.Unit(x + x)
//	}
//	ys := seqmonad.Prod(double, seqmonad.Iota(3)) // [0 2 4]
func Prod[T, U any](f func(T) *List[U], xs *List[T]) *List[U] {
	out := New[U]()
	for {
		x, ok := xs.PopFront()
		if !ok {
			return out
		}
		out.Splice(f(x))
	}
}

// ============================================================================
// Derived Combinators
// ============================================================================

// Join flattens a list of lists into their concatenation, in order. It is
// Prod with the identity endofunctor — no new algorithmic content. Join
// consumes xs.
func Join[T any](xs *List[*List[T]]) *List[T] {
	return Prod(func(ys *List[T]) *List[T] { return ys }, xs)
}

// Fmap maps f over xs, expressed entirely through Unit and Prod: each result
// is wrapped by Unit and the singletons are concatenated by Prod. Ordinary
// mapping is thereby a derived, not primitive, operation of the algebra.
// Fmap consumes xs.
func Fmap[T, U any](f func(T) U, xs *List[T]) *List[U] {
	return Prod(func(y T) *List[U] { return Unit(f(y)) }, xs)
}

// Foldl left-folds f over xs starting from y0, processing elements strictly
// in sequence order. Unlike Prod, Foldl does not consume its input.
func Foldl[T, Y any](f func(Y, T) Y, xs *List[T], y0 Y) Y {
	y := y0
	for n := listHead(xs); n != nil; n = n.next {
		y = f(y, n.val)
	}
	return y
}

// ============================================================================
// Function Combinators
// ============================================================================

// Dot is right-to-left composition: Dot(f, g)(x) == f(g(x)).
func Dot[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Partial fixes the second argument of a binary function:
// Partial(f, b)(a) == f(a, b).
func Partial[A, B, C any](f func(A, B) C, b B) func(A) C {
	return func(a A) C {
		return f(a, b)
	}
}
