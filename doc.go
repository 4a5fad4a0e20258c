/*
Package purefp provides functional-programming building blocks for Go: a
persistent generic list, a single right fold from which the usual list
reductions are derived, an optional value, and function composition.

# Overview

Every reduction in this package is the same recursion with two pieces
swapped out: what the empty list becomes, and how a head is combined with
the already-reduced tail. Fold is written once and everything else supplies
those two pieces:

	Sum(xs)      == Fold(func(h, acc int) int { return h + acc }, 0, xs)
	Length(xs)   == Fold(func(_ T, acc int) int { return 1 + acc }, 0, xs)
	Append(xs, ys) == Fold(Cons[T], ys, xs)

# Quick Example

	xs := purefp.Of(4, 1, 2)

	purefp.Sum(xs)                        // 7
	purefp.Product(xs)                    // 8
	purefp.Length(xs)                     // 3
	purefp.Sum(purefp.Append(xs, xs))     // 14
	purefp.Sum(purefp.Map(inc, xs))       // 10

# Core Concepts

Closed variants: List is either Nil or *Node, Optional is either Absent or
Present. Both interfaces are sealed, and Match / MatchOptional call exactly
one branch, so there is no way to read the head of an empty list:

	purefp.Match(xs,
	    func() string { return "empty" },
	    func(head int, tail purefp.List[int]) string { return "starts with 4" },
	)

Structural sharing: lists never change, so a tail can be shared by any
number of lists. Append shares its second argument instead of copying it.

Monoids: Monoid pairs Empty with Compose, the same vocabulary Func uses.
Concat folds a list with a monoid:

	purefp.Concat(purefp.ProductMonoid[int](), xs) // 8

Recursion depth: Fold recurses once per node. FoldIter keeps the same
contract with an explicit stack, for lists too long to recurse over.

# Available Types

Data:
  - List, Nil, Node: persistent singly linked list
  - Optional, Absent, Present: optional value
  - Monoid: identity plus associative operation

Functions:
  - Func: A -> A with Compose, AndThen, Repeat, Tap
  - StringerFunc: fmt.Stringer with Join, WithPrefix, WithSuffix

# Package Import

	import "github.com/Pure-Company/purefp"
*/
package purefp
