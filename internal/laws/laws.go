// Package laws checks the algebraic laws of package option against sample values.
package laws

import (
	"fmt"

	"github.com/npillmayer/option"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
)

// tracer traces with key 'option.laws'
func tracer() tracing.Trace {
	return tracing.Select("option.laws")
}

// Law is a property every sample option has to satisfy.
type Law struct {
	Name  string
	Holds func(option.Option[int]) bool
}

// Outcome is the result of checking one law.
type Outcome struct {
	Law      string
	Checked  int
	Failures []string // rendered samples violating the law
}

// Passed is true if no sample violated the law.
func (o Outcome) Passed() bool {
	return len(o.Failures) == 0
}

var (
	double = func(x int) int { return 2 * x }
	succ   = func(x int) int { return x + 1 }
	half   = func(x int) option.Option[int] {
		return option.When[int](x%2 == 0)(func() option.Option[int] { return option.Some(x / 2) })
	}
	positive = func(x int) option.Option[int] {
		if x > 0 {
			return option.Some(x)
		}
		return option.Nil[int]()
	}
)

// Laws lists the laws checked by Check.
var Laws = []Law{
	{"functor identity", func(o option.Option[int]) bool {
		return option.Map(func(x int) int { return x })(o) == o
	}},
	{"functor composition", func(o option.Option[int]) bool {
		return option.Map(succ)(option.Map(double)(o)) == option.Map(func(x int) int { return succ(double(x)) })(o)
	}},
	{"monad left identity", func(o option.Option[int]) bool {
		x, ok := o.Unwrap()
		return !ok || option.Chain(half)(option.Some(x)) == half(x)
	}},
	{"monad right identity", func(o option.Option[int]) bool {
		return option.Chain(option.Some[int])(o) == o
	}},
	{"monad associativity", func(o option.Option[int]) bool {
		lhs := option.Chain(positive)(option.Chain(half)(o))
		rhs := option.Chain(func(x int) option.Option[int] { return option.Chain(positive)(half(x)) })(o)
		return lhs == rhs
	}},
	{"absence is passed through", func(o option.Option[int]) bool {
		return o.IsSome() || (option.Map(succ)(o) == o &&
			option.Chain(half)(o) == o &&
			option.Filter(func(int) bool { return false })(o) == o)
	}},
	{"presence is exclusive", func(o option.Option[int]) bool {
		return option.IsSome(o) != option.IsNone(o)
	}},
}

// Samples creates n present sample options plus both forms of absence.
func Samples(n int) []option.Option[int] {
	samples := lo.Times(n, func(i int) option.Option[int] {
		return option.Some(i - n/2)
	})
	return append(samples, option.None[int](), option.Nil[int]())
}

// Check checks every law against every sample.
func Check(samples []option.Option[int]) []Outcome {
	return lo.Map(Laws, func(law Law, _ int) Outcome {
		failing := lo.Reject(samples, func(o option.Option[int], _ int) bool {
			return law.Holds(o)
		})
		out := Outcome{
			Law:     law.Name,
			Checked: len(samples),
			Failures: lo.Map(failing, func(o option.Option[int], _ int) string {
				return fmt.Sprint(o)
			}),
		}
		tracer().Debugf("law %q: %d/%d samples hold", law.Name, len(samples)-len(failing), len(samples))
		return out
	})
}
