package purefp

import "math"

// ============================================================================
// Composition
// ============================================================================

// Compose returns the function x -> f(g(x)).
//
// Example:
//
//	inc := func(x int) int { return x + 1 }
//	double := func(x int) int { return x * 2 }
//	Compose(inc, double)(5) // 11
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C {
		return f(g(x))
	}
}

// Identity returns its argument. It is the identity of Compose.
func Identity[A any](a A) A {
	return a
}

// ApplyN returns a function that applies f n times. It is built by
// composition alone: ApplyN(f, n) is Compose(ApplyN(f, n-1), f), and
// ApplyN(f, 1) is f. For n <= 0 it returns Identity.
//
// Example:
//
//	square := func(x float64) float64 { return x * x }
//	ApplyN(square, 2)(3.0) // 81
func ApplyN[A any](f func(A) A, n int) func(A) A {
	switch {
	case n <= 0:
		return Identity[A]
	case n == 1:
		return f
	default:
		return Compose(ApplyN(f, n-1), f)
	}
}

// OfPi evaluates f at π.
func OfPi(f func(float64) float64) float64 {
	return f(math.Pi)
}

// ============================================================================
// Func
// ============================================================================

// Func is a function from A to A with composition methods. Under Compose it
// forms a monoid whose identity is Empty.
//
// Example:
//
//	square := Func[float64](func(x float64) float64 { return x * x })
//	square.Repeat(2).Apply(2) // 16
type Func[A any] func(A) A

// Apply calls f.
func (f Func[A]) Apply(x A) A {
	return f(x)
}

// Empty returns the identity function (Monoid identity).
func (f Func[A]) Empty() Func[A] {
	return Identity[A]
}

// Compose returns x -> f(g(x)) (Monoid operation).
func (f Func[A]) Compose(g Func[A]) Func[A] {
	return Compose[A, A, A](f, g)
}

// AndThen returns x -> g(f(x)).
func (f Func[A]) AndThen(g Func[A]) Func[A] {
	return Compose[A, A, A](g, f)
}

// Repeat applies f n times; see ApplyN.
func (f Func[A]) Repeat(n int) Func[A] {
	return ApplyN[A](f, n)
}

// Tap calls fn with every result of f without changing it.
func (f Func[A]) Tap(fn func(in, out A)) Func[A] {
	return func(x A) A {
		y := f(x)
		fn(x, y)
		return y
	}
}
