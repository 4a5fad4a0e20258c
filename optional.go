package purefp

// Optional is a value that may be absent. It is either Absent or Present,
// and like List it is sealed to those two variants.
type Optional[T any] interface {
	String() string

	isOptional(T)
}

// Absent is the Optional with no value.
type Absent[T any] struct{}

func (Absent[T]) isOptional(T) {}

// String renders "None".
func (Absent[T]) String() string { return "None" }

// Present is the Optional holding a value.
type Present[T any] struct {
	value T
}

func (Present[T]) isOptional(T) {}

// Value returns the held value.
func (p Present[T]) Value() T { return p.value }

// String renders the held value with fmt.Sprint.
func (p Present[T]) String() string { return Sprint(p.value).String() }

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Absent[T]{}
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Present[T]{value: v}
}

// MatchOptional calls onAbsent or onPresent depending on the variant of o.
// A nil Optional counts as absent.
func MatchOptional[T, R any](o Optional[T], onAbsent func() R, onPresent func(T) R) R {
	if p, ok := o.(Present[T]); ok {
		return onPresent(p.value)
	}
	return onAbsent()
}

// Get returns the held value and true, or the zero value and false.
func Get[T any](o Optional[T]) (T, bool) {
	p, ok := o.(Present[T])
	return p.value, ok
}

// OrElse returns the held value, or fallback when o is absent.
func OrElse[T any](o Optional[T], fallback T) T {
	return MatchOptional(o,
		func() T { return fallback },
		func(v T) T { return v },
	)
}

// MapOptional applies f to the held value, if any.
func MapOptional[A, B any](o Optional[A], f func(A) B) Optional[B] {
	return MatchOptional(o,
		None[B],
		func(v A) Optional[B] { return Some(f(v)) },
	)
}
