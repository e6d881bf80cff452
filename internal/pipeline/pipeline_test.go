package pipeline

import (
	"errors"
	"testing"

	"github.com/npillmayer/option"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PipelineTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestPipelineFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "option.pipeline")
	defer teardown()
	suite.Run(t, new(PipelineTestEnviron))
}

// run once, before test suite methods
func (env *PipelineTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracer().SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *PipelineTestEnviron) TestTransformingPipelines() {
	cases := []struct {
		line     string
		expected Value
	}{
		{"some 1 | map +1", option.Some(2)},
		{"none | map +1", option.None[int]()},
		{"nil | map +1", option.Nil[int]()},
		{"some 1 | chain -2", option.Nil[int]()},
		{"some 3 | chain -2", option.Some(1)},
		{"nil | chain +1", option.Nil[int]()},
		{"some 1 | filter >1", option.None[int]()},
		{"nil | filter >1", option.Nil[int]()},
		{"some 1 | filternot >1", option.Some(1)},
		{"none | orelse 5", option.Some(5)},
		{"some 1 | orelse 5", option.Some(1)},
		{"some 4 | tap | map *2", option.Some(8)},
		{"nil | flatten", option.Nil[int]()},
		{"some 6 | flatten | map /3", option.Some(2)},
		{"when true 1", option.Some(1)},
		{"when false 1", option.None[int]()},
		{"zip 1 2", option.Some(3)},
		{"zip 1 2 3", option.Some(6)},
		{"zip 1 2 3 4", option.Some(10)},
		{"zip 1 2 3 4 5", option.Some(15)},
		{"zip 1 nil 3", option.None[int]()},
		{"zip nil none", option.None[int]()},
	}
	for _, c := range cases {
		r, err := Eval(c.line)
		env.Require().NoError(err, "expected %q to parse", c.line)
		env.Equal(option.Some(c.expected), r.Option(), "evaluating %q", c.line)
	}
}

func (env *PipelineTestEnviron) TestTerminalPipelines() {
	cases := []struct {
		line     string
		expected any
	}{
		{"none | getorelse 7", 7},
		{"some 1 | getorelse 7", 1},
		{"some 1 | contains 1", true},
		{"nil | contains 1", false},
		{"some 2 | exists !=1", true},
		{"some 1 | reduce 1 +", 2},
		{"nil | reduce 1 +", 1},
		{"some 1 | match 1 0", 2},
		{"none | match 1 0", 0},
		{"some 5 | toslice", []int{5}},
		{"nil | toslice", []int{}},
	}
	for _, c := range cases {
		r, err := Eval(c.line)
		env.Require().NoError(err, "expected %q to parse", c.line)
		env.Equal(c.expected, r.Final, "evaluating %q", c.line)
		env.True(r.Option().IsNone(), "expected %q to end in a terminal value", c.line)
	}
}

func (env *PipelineTestEnviron) TestSteps() {
	p, err := Parse("some  1 |map +1|   getorelse 0")
	env.Require().NoError(err)
	env.Equal("some 1 | map +1 | getorelse 0", p.String())
	r := p.Eval()
	env.Equal([]Step{
		{Stage: "some 1", Value: "Some(1)"},
		{Stage: "map +1", Value: "Some(2)"},
		{Stage: "getorelse 0", Value: "2"},
	}, r.Steps)
	env.Equal("2", r.String())
	env.Equal(r, p.Eval(), "expected repeated evaluation to yield the same result")
}

func (env *PipelineTestEnviron) TestParseErrors() {
	cases := []struct {
		line  string
		err   error
		stage int
	}{
		{"", ErrEmpty, 0},
		{"some 1 |", ErrEmpty, 1},
		{"maybe 1", ErrUnknownSource, 0},
		{"some x", ErrArgument, 0},
		{"some", ErrArgument, 0},
		{"zip 1", ErrArgument, 0},
		{"zip 1 2 3 4 5 6", ErrArgument, 0},
		{"when perhaps 1", ErrArgument, 0},
		{"some 1 | frobnicate", ErrUnknownStage, 1},
		{"some 1 | map /0", ErrArgument, 1},
		{"some 1 | map 1", ErrArgument, 1},
		{"some 1 | filter ~1", ErrArgument, 1},
		{"some 1 | reduce 0 /", ErrArgument, 1},
		{"some 1 | getorelse 0 | map +1", ErrAfterTerminal, 2},
	}
	for _, c := range cases {
		_, err := Parse(c.line)
		env.Require().Error(err, "expected %q not to parse", c.line)
		env.True(errors.Is(err, c.err), "expected %q to fail with %v, got %v", c.line, c.err, err)
		var perr *ParseError
		env.Require().True(errors.As(err, &perr))
		env.Equal(c.stage, perr.Stage, "expected error for %q in stage %d", c.line, c.stage)
	}
}

func (env *PipelineTestEnviron) TestParseErrorMessage() {
	_, err := Parse("some 1 | map /0")
	env.Equal(`stage 1 at "/0": invalid argument: division by zero`, err.Error())
}
