// Package transcript evaluates the fixed demonstration sequence of the
// purefp library and renders it as text, JSON or YAML.
package transcript

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/Pure-Company/purefp"
)

// Step is one evaluated expression of the transcript.
type Step struct {
	Name  string `json:"name" yaml:"name"`
	Expr  string `json:"expr" yaml:"expr"`
	Value string `json:"value" yaml:"value"`
}

type program struct {
	name string
	expr string
	eval func(log zerolog.Logger) any
}

func square(x float64) float64 { return x * x }

func inc(x int) int { return x + 1 }

var (
	sample = purefp.Of(4, 1, 2)
	mixed  = purefp.Of(false, true)
)

func squareTwice(log zerolog.Logger) purefp.Func[float64] {
	return purefp.Func[float64](square).
		Tap(func(in, out float64) {
			log.Debug().Float64("in", in).Float64("out", out).Msg("square")
		}).
		Repeat(2)
}

var programs = []program{
	{"ofPi", "ofPi(sin)", func(zerolog.Logger) any { return purefp.OfPi(math.Sin) }},
	{"applyN", "applyN(square, 2)(2.0)", func(log zerolog.Logger) any { return squareTwice(log).Apply(2.0) }},
	{"applyN", "applyN(square, 2)(3.0)", func(log zerolog.Logger) any { return squareTwice(log).Apply(3.0) }},
	{"optional", "Some(5.0)", func(zerolog.Logger) any { return purefp.Some(5.0) }},
	{"optional", "None", func(zerolog.Logger) any { return purefp.None[float64]() }},
	{"list", "[4 1 2]", func(zerolog.Logger) any { return sample }},
	{"sum", "sum([])", func(zerolog.Logger) any { return purefp.Sum(purefp.Empty[int]()) }},
	{"sum", "sum([1 2])", func(zerolog.Logger) any { return purefp.Sum(purefp.Of(1, 2)) }},
	{"product", "product([4 1 2])", func(zerolog.Logger) any { return purefp.Product(sample) }},
	{"anyTrue", "anyTrue([false true])", func(zerolog.Logger) any { return purefp.AnyTrue(mixed) }},
	{"allTrue", "allTrue([false true])", func(zerolog.Logger) any { return purefp.AllTrue(mixed) }},
	{"length", "length([4 1 2])", func(zerolog.Logger) any { return purefp.Length(sample) }},
	{"append", "sum(append([4 1 2], [4 1 2]))", func(zerolog.Logger) any {
		return purefp.Sum(purefp.Append(sample, sample))
	}},
	{"map", "sum(map(x -> x+1, [4 1 2]))", func(zerolog.Logger) any {
		return purefp.Sum(purefp.Map(inc, sample))
	}},
}

// Steps evaluates the transcript in order.
func Steps(log zerolog.Logger) purefp.List[Step] {
	steps := make([]Step, 0, len(programs))
	for _, p := range programs {
		value := purefp.Sprint(p.eval(log)).String()
		log.Debug().Str("step", p.name).Str("expr", p.expr).Str("value", value).Msg("evaluated")
		steps = append(steps, Step{Name: p.name, Expr: p.expr, Value: value})
	}
	return purefp.FromSlice(steps)
}

// Names returns the distinct step names in transcript order.
func Names() []string {
	var names []string
	seen := map[string]bool{}
	for _, p := range programs {
		if !seen[p.name] {
			seen[p.name] = true
			names = append(names, p.name)
		}
	}
	return names
}

// Select keeps the steps whose name is one of names. No names keeps all.
func Select(steps purefp.List[Step], names ...string) purefp.List[Step] {
	if len(names) == 0 {
		return steps
	}
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	return purefp.Fold(func(s Step, kept purefp.List[Step]) purefp.List[Step] {
		if wanted[s.Name] {
			return purefp.Cons(s, kept)
		}
		return kept
	}, purefp.Empty[Step](), steps)
}
