package purefp

import "iter"

// ============================================================================
// List
// ============================================================================

// List is an immutable, singly linked sequence. A List is either Nil (the
// empty list) or a *Node holding one element and the rest of the list.
//
// The interface is sealed: Nil and *Node are its only implementations, so a
// type switch over those two cases, or Match, covers every List.
//
// Lists never change after construction, so any number of lists may share a
// common tail:
//
//	shared := Of(1, 2)
//	a := Cons(0, shared) // [0 1 2]
//	b := Cons(9, shared) // [9 1 2]
type List[T any] interface {
	String() string

	isList(T)
}

// Nil is the empty list.
type Nil[T any] struct{}

func (Nil[T]) isList(T) {}

// String renders the empty list as "[]".
func (Nil[T]) String() string { return "[]" }

// Node is a non-empty list: a head element followed by a tail list.
// Nodes are only built through Cons, which guarantees the tail is never a
// nil interface.
type Node[T any] struct {
	head T
	tail List[T]
}

func (*Node[T]) isList(T) {}

// Head returns the first element.
func (n *Node[T]) Head() T { return n.head }

// Tail returns the list after the first element.
func (n *Node[T]) Tail() List[T] { return n.tail }

// String renders the list as "[a b c]".
func (n *Node[T]) String() string {
	var items []StringerFunc
	for v := range All[T](n) {
		items = append(items, Sprint(v))
	}
	return items[0].Join(" ", items[1:]...).WithPrefix("[").WithSuffix("]").String()
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return Nil[T]{}
}

// Cons returns a new list with head in front of tail. It runs in constant
// time and shares tail with the result. A nil tail is treated as Empty.
func Cons[T any](head T, tail List[T]) List[T] {
	return &Node[T]{head: head, tail: orEmpty(tail)}
}

func orEmpty[T any](xs List[T]) List[T] {
	if n, ok := xs.(*Node[T]); xs == nil || (ok && n == nil) {
		return Nil[T]{}
	}
	return xs
}

// Match calls onEmpty if xs is empty and onNode with the head and tail
// otherwise, returning whichever result it computed. Exactly one of the two
// functions is called.
func Match[T, R any](xs List[T], onEmpty func() R, onNode func(head T, tail List[T]) R) R {
	if n, ok := xs.(*Node[T]); ok && n != nil {
		return onNode(n.head, n.tail)
	}
	return onEmpty()
}

// ============================================================================
// Construction and traversal helpers
// ============================================================================

// Of builds a list holding items in the given order.
//
// Example:
//
//	xs := Of(4, 1, 2) // Cons(4, Cons(1, Cons(2, Empty[int]())))
func Of[T any](items ...T) List[T] {
	xs := Empty[T]()
	for i := len(items) - 1; i >= 0; i-- {
		xs = Cons(items[i], xs)
	}
	return xs
}

// FromSlice builds a list holding the elements of s in order.
func FromSlice[T any](s []T) List[T] {
	return Of(s...)
}

// ToSlice copies the elements of xs into a new slice. The empty list yields
// a nil slice.
func ToSlice[T any](xs List[T]) []T {
	var out []T
	for v := range All(xs) {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over the elements of xs, front to back.
func All[T any](xs List[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n, ok := xs.(*Node[T]); ok && n != nil; n, ok = n.tail.(*Node[T]) {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Reverse returns a new list with the elements of xs in opposite order.
func Reverse[T any](xs List[T]) List[T] {
	out := Empty[T]()
	for v := range All(xs) {
		out = Cons(v, out)
	}
	return out
}

// Equal reports whether xs and ys hold equal elements in the same order.
func Equal[T comparable](xs, ys List[T]) bool {
	next, stop := iter.Pull(All(ys))
	defer stop()
	for x := range All(xs) {
		y, ok := next()
		if !ok || x != y {
			return false
		}
	}
	_, more := next()
	return !more
}
