package purefp

import (
	"fmt"
	"strings"
)

// StringerFunc is a functional binding for fmt.Stringer.
// List and Optional render themselves through it.
//
// Example:
//
//	s := StringerFunc(func() string {
//	    return "4 1 2"
//	}).WithPrefix("[").WithSuffix("]")
type StringerFunc func() string

// Sprint returns a StringerFunc that formats v with fmt.Sprint.
func Sprint(v any) StringerFunc {
	return func() string {
		return fmt.Sprint(v)
	}
}

// String implements fmt.Stringer. A nil StringerFunc renders as "".
func (f StringerFunc) String() string {
	if f == nil {
		return ""
	}
	return f()
}

// Join renders f followed by others, separated by sep. Each part is
// rendered once.
func (f StringerFunc) Join(sep string, others ...StringerFunc) StringerFunc {
	all := append([]StringerFunc{f}, others...)
	return func() string {
		parts := make([]string, len(all))
		for i, fn := range all {
			parts[i] = fn.String()
		}
		return strings.Join(parts, sep)
	}
}

// WithPrefix adds a prefix.
func (f StringerFunc) WithPrefix(prefix string) StringerFunc {
	return func() string {
		return prefix + f.String()
	}
}

// WithSuffix adds a suffix.
func (f StringerFunc) WithSuffix(suffix string) StringerFunc {
	return func() string {
		return f.String() + suffix
	}
}
