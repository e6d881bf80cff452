/*
Package pipeline parses and evaluates small textual pipelines of option
combinators over integers. It drives the interactive and command line tools of
this module, and serves as a living example of how the combinators of package
option compose.

A pipeline consists of a source and any number of stages, separated by '|':

	some 3 | map +1 | filter >2 | getorelse 0

Sources are

	some N                       present value N
	none                         canonical empty option
	nil                          the second form of an empty option
	when true|false N            option.When, producing Some(N)
	zip A B [C [D [E]]]          option.Zip2…Zip5 over atoms (N, none, nil),
	                             adding up the components of the tuple

Stages transforming an option are

	map OP, chain OP, filter CMP, filternot CMP, orelse N, tap, flatten

where OP is one of +N, -N, *N, /N and CMP is one of <N, >N, =N, !=N.
'chain' yields Nil whenever its operation would produce a negative number.
Terminal stages end a pipeline:

	contains N, exists CMP, getorelse N, reduce N +|-|*, match N M, toslice

'reduce N +' results in N + value for a present option and in N otherwise.
'match N M' adds N to a present value and results in M for an empty one.
*/
package pipeline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/option"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'option.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("option.pipeline")
}

// Value is the type of options flowing through a pipeline.
type Value = option.Option[int]

type transform struct {
	name string
	fn   func(Value) Value
}

type terminal struct {
	name string
	fn   func(Value) any
}

// Pipeline is a parsed pipeline, ready for evaluation. Evaluating a pipeline
// does not change it, so it may be evaluated repeatedly.
type Pipeline struct {
	source     string
	src        func() Value
	transforms []transform
	terminal   *terminal
}

// Step records the outcome of a single stage.
type Step struct {
	Stage string // stage as written, normalized to single blanks
	Value string // rendered outcome of the stage
}

// Result is the outcome of evaluating a pipeline.
type Result struct {
	Steps []Step
	// Final is either a Value, or, for pipelines ending in a terminal stage,
	// the terminal's result (bool, int or []int).
	Final any
}

func (r Result) String() string {
	return fmt.Sprint(r.Final)
}

// Option returns the final option of a pipeline without a terminal stage.
func (r Result) Option() option.Option[Value] {
	v, ok := r.Final.(Value)
	return option.FromOk(v, ok)
}

// Eval runs the pipeline.
func (p *Pipeline) Eval() Result {
	steps := make([]Step, 0, len(p.transforms)+2)
	o := p.src()
	steps = append(steps, Step{Stage: p.source, Value: o.String()})
	tracer().Debugf("%s => %v", p.source, o)
	for _, t := range p.transforms {
		o = t.fn(o)
		steps = append(steps, Step{Stage: t.name, Value: o.String()})
		tracer().Debugf("%s => %v", t.name, o)
	}
	if p.terminal == nil {
		return Result{Steps: steps, Final: o}
	}
	final := p.terminal.fn(o)
	steps = append(steps, Step{Stage: p.terminal.name, Value: fmt.Sprint(final)})
	tracer().Debugf("%s => %v", p.terminal.name, final)
	return Result{Steps: steps, Final: final}
}

func (p *Pipeline) String() string {
	sb := strings.Builder{}
	sb.WriteString(p.source)
	for _, t := range p.transforms {
		sb.WriteString(" | ")
		sb.WriteString(t.name)
	}
	if p.terminal != nil {
		sb.WriteString(" | ")
		sb.WriteString(p.terminal.name)
	}
	return sb.String()
}

// Eval parses and evaluates line in one go.
func Eval(line string) (Result, error) {
	p, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return p.Eval(), nil
}
