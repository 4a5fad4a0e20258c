package purefp

import "golang.org/x/exp/constraints"

// ============================================================================
// Fold Engine
// ============================================================================

// Fold collapses xs from the right: the empty list becomes zero and every
// node becomes combine(head, fold of the tail).
//
//	Fold(f, z, [a b c]) == f(a, f(b, f(c, z)))
//
// The tail is folded before combine sees the head, so the rightmost element
// meets zero first and the leftmost element is combined last. Fold recurses
// once per node; use FoldIter for very long lists.
func Fold[A, B any](combine func(A, B) B, zero B, xs List[A]) B {
	return Match(xs,
		func() B { return zero },
		func(head A, tail List[A]) B {
			return combine(head, Fold(combine, zero, tail))
		},
	)
}

// FoldIter has exactly the contract of Fold but keeps its own stack of
// pending heads instead of recursing, so its call depth does not grow with
// the list.
func FoldIter[A, B any](combine func(A, B) B, zero B, xs List[A]) B {
	var pending []A
	for v := range All(xs) {
		pending = append(pending, v)
	}
	acc := zero
	for i := len(pending) - 1; i >= 0; i-- {
		acc = combine(pending[i], acc)
	}
	return acc
}

// ============================================================================
// Derived Operations
// ============================================================================

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds the elements of xs. Sum of the empty list is 0.
func Sum[N Number](xs List[N]) N {
	return Fold(func(head, acc N) N { return head + acc }, 0, xs)
}

// Product multiplies the elements of xs. Product of the empty list is 1.
func Product[N Number](xs List[N]) N {
	return Fold(func(head, acc N) N { return head * acc }, 1, xs)
}

// AnyTrue reports whether at least one element of xs is true.
func AnyTrue(xs List[bool]) bool {
	return Fold(func(head, acc bool) bool { return head || acc }, false, xs)
}

// AllTrue reports whether every element of xs is true. AllTrue of the empty
// list is true.
func AllTrue(xs List[bool]) bool {
	return Fold(func(head, acc bool) bool { return head && acc }, true, xs)
}

// Length counts the elements of xs.
func Length[T any](xs List[T]) int {
	return Fold(func(_ T, acc int) int { return 1 + acc }, 0, xs)
}

// Append returns xs followed by ys. It folds over xs with Cons as the
// combining function and ys in place of the empty list, so ys is shared,
// not copied.
func Append[T any](xs, ys List[T]) List[T] {
	return Fold(Cons[T], ys, xs)
}

// Map returns a new list holding f applied to every element of xs, in order.
// Like every fold, it calls f on the last element first.
func Map[A, B any](f func(A) B, xs List[A]) List[B] {
	return Fold(func(head A, acc List[B]) List[B] {
		return Cons(f(head), acc)
	}, Empty[B](), xs)
}

// ============================================================================
// Monoids
// ============================================================================

// Monoid pairs an identity element with an associative operation on T.
// Any Monoid supplies both degrees of freedom Fold needs, see Concat.
type Monoid[T any] struct {
	Empty   T
	Compose func(T, T) T
}

// Concat folds xs with m.Compose, starting from m.Empty.
//
// Example:
//
//	Concat(SumMonoid[int](), Of(4, 1, 2)) // 7
func Concat[T any](m Monoid[T], xs List[T]) T {
	return Fold(m.Compose, m.Empty, xs)
}

// SumMonoid is (0, +).
func SumMonoid[N Number]() Monoid[N] {
	return Monoid[N]{Empty: 0, Compose: func(a, b N) N { return a + b }}
}

// ProductMonoid is (1, *).
func ProductMonoid[N Number]() Monoid[N] {
	return Monoid[N]{Empty: 1, Compose: func(a, b N) N { return a * b }}
}

// AnyMonoid is (false, ||).
func AnyMonoid() Monoid[bool] {
	return Monoid[bool]{Empty: false, Compose: func(a, b bool) bool { return a || b }}
}

// AllMonoid is (true, &&).
func AllMonoid() Monoid[bool] {
	return Monoid[bool]{Empty: true, Compose: func(a, b bool) bool { return a && b }}
}

// ListMonoid is (Empty, Append). Concat with it flattens a list of lists.
func ListMonoid[T any]() Monoid[List[T]] {
	return Monoid[List[T]]{Empty: Empty[T](), Compose: Append[T]}
}
