package pipeline

import (
	"strconv"
	"strings"

	"github.com/npillmayer/option"
	"github.com/samber/lo"
)

// Parse parses a textual pipeline. Errors are of type *ParseError.
func Parse(line string) (*Pipeline, error) {
	parts := lo.Map(strings.Split(line, "|"), func(s string, _ int) []string {
		return strings.Fields(s)
	})
	if len(parts) == 1 && len(parts[0]) == 0 {
		return nil, parseErr(0, "", ErrEmpty, "nothing to evaluate")
	}
	if i := lo.IndexOf(lo.Map(parts, func(f []string, _ int) int { return len(f) }), 0); i >= 0 {
		return nil, parseErr(i, "", ErrEmpty, "empty stage")
	}
	p := &Pipeline{source: strings.Join(parts[0], " ")}
	var err error
	if p.src, err = parseSource(parts[0]); err != nil {
		return nil, err
	}
	for i, fields := range parts[1:] {
		stage := i + 1
		if p.terminal != nil {
			return nil, parseErr(stage, fields[0], ErrAfterTerminal, "%q ends the pipeline", p.terminal.name)
		}
		name := strings.Join(fields, " ")
		if fn, ok, err := parseTransform(stage, fields); err != nil {
			return nil, err
		} else if ok {
			p.transforms = append(p.transforms, transform{name: name, fn: fn})
			continue
		}
		fn, err := parseTerminal(stage, fields)
		if err != nil {
			return nil, err
		}
		p.terminal = &terminal{name: name, fn: fn}
	}
	tracer().Debugf("parsed pipeline %s", p)
	return p, nil
}

// --- Sources ---------------------------------------------------------------

func parseSource(fields []string) (func() Value, error) {
	switch strings.ToLower(fields[0]) {
	case "some":
		if err := wantArgs(0, fields, 1); err != nil {
			return nil, err
		}
		n, err := parseInt(0, fields[1])
		if err != nil {
			return nil, err
		}
		return func() Value { return option.Some(n) }, nil
	case "none", "nil":
		if err := wantArgs(0, fields, 0); err != nil {
			return nil, err
		}
		a, _ := parseAtom(0, fields[0])
		return func() Value { return a }, nil
	case "when":
		if err := wantArgs(0, fields, 2); err != nil {
			return nil, err
		}
		cond, err := strconv.ParseBool(fields[1])
		if err != nil {
			return nil, parseErr(0, fields[1], ErrArgument, "expected true or false")
		}
		n, err := parseInt(0, fields[2])
		if err != nil {
			return nil, err
		}
		return func() Value {
			return option.When[int](cond)(func() Value { return option.Some(n) })
		}, nil
	case "zip":
		return parseZip(fields)
	}
	return nil, parseErr(0, fields[0], ErrUnknownSource, "expected some, none, nil, when or zip")
}

func parseZip(fields []string) (func() Value, error) {
	if len(fields) < 3 || len(fields) > 6 {
		return nil, parseErr(0, fields[0], ErrArgument, "zip takes 2 to 5 arguments, have %d", len(fields)-1)
	}
	atoms := make([]Value, len(fields)-1)
	for i, f := range fields[1:] {
		a, err := parseAtom(0, f)
		if err != nil {
			return nil, err
		}
		atoms[i] = a
	}
	switch len(atoms) {
	case 2:
		return func() Value {
			return option.Map(func(t option.Tuple2[int, int]) int {
				return lo.Sum([]int{t.V1, t.V2})
			})(option.Zip2(atoms[0], atoms[1]))
		}, nil
	case 3:
		return func() Value {
			return option.Map(func(t option.Tuple3[int, int, int]) int {
				return lo.Sum([]int{t.V1, t.V2, t.V3})
			})(option.Zip3(atoms[0], atoms[1], atoms[2]))
		}, nil
	case 4:
		return func() Value {
			return option.Map(func(t option.Tuple4[int, int, int, int]) int {
				return lo.Sum([]int{t.V1, t.V2, t.V3, t.V4})
			})(option.Zip4(atoms[0], atoms[1], atoms[2], atoms[3]))
		}, nil
	}
	return func() Value {
		return option.Map(func(t option.Tuple5[int, int, int, int, int]) int {
			return lo.Sum([]int{t.V1, t.V2, t.V3, t.V4, t.V5})
		})(option.Zip5(atoms[0], atoms[1], atoms[2], atoms[3], atoms[4]))
	}, nil
}

// parseAtom reads an integer, "none" or "nil".
func parseAtom(stage int, s string) (Value, error) {
	switch strings.ToLower(s) {
	case "none":
		return option.None[int](), nil
	case "nil":
		return option.Nil[int](), nil
	}
	n, err := parseInt(stage, s)
	if err != nil {
		return Value{}, err
	}
	return option.Some(n), nil
}

// --- Stages ----------------------------------------------------------------

// parseTransform returns ok=false if fields do not denote a transforming stage.
func parseTransform(stage int, fields []string) (fn func(Value) Value, ok bool, err error) {
	switch strings.ToLower(fields[0]) {
	case "map":
		var op func(int) int
		if op, err = oneArg(stage, fields, parseOp); err == nil {
			fn = option.Map(op)
		}
	case "chain":
		var op func(int) int
		if op, err = oneArg(stage, fields, parseOp); err == nil {
			fn = option.Chain(func(x int) Value {
				if y := op(x); y >= 0 {
					return option.Some(y)
				}
				return option.Nil[int]()
			})
		}
	case "filter":
		var cmp func(int) bool
		if cmp, err = oneArg(stage, fields, parseCmp); err == nil {
			fn = option.Filter(cmp)
		}
	case "filternot":
		var cmp func(int) bool
		if cmp, err = oneArg(stage, fields, parseCmp); err == nil {
			fn = option.FilterNot(cmp)
		}
	case "orelse":
		var n int
		if n, err = oneArg(stage, fields, parseInt); err == nil {
			fn = option.OrElse(func() Value { return option.Some(n) })
		}
	case "tap":
		if err = wantArgs(stage, fields, 0); err == nil {
			fn = option.Tap(func(x int) { tracer().Infof("tap: %d", x) })
		}
	case "flatten":
		if err = wantArgs(stage, fields, 0); err == nil {
			fn = func(o Value) Value {
				return option.Flatten(option.Map(option.Some[int])(o))
			}
		}
	default:
		return nil, false, nil
	}
	return fn, err == nil, err
}

func parseTerminal(stage int, fields []string) (fn func(Value) any, err error) {
	switch strings.ToLower(fields[0]) {
	case "contains":
		var n int
		if n, err = oneArg(stage, fields, parseInt); err == nil {
			fn = anyOf(option.Contains(n))
		}
	case "exists":
		var cmp func(int) bool
		if cmp, err = oneArg(stage, fields, parseCmp); err == nil {
			fn = anyOf(option.Exists(cmp))
		}
	case "getorelse":
		var n int
		if n, err = oneArg(stage, fields, parseInt); err == nil {
			fn = anyOf(option.GetOrElse(func() int { return n }))
		}
	case "reduce":
		if err = wantArgs(stage, fields, 2); err != nil {
			return
		}
		var seed int
		var op func(int, int) int
		if seed, err = parseInt(stage, fields[1]); err != nil {
			return
		}
		if op, err = parseBinOp(stage, fields[2]); err != nil {
			return
		}
		fn = anyOf(option.Reduce(seed, op))
	case "match":
		if err = wantArgs(stage, fields, 2); err != nil {
			return
		}
		var add, dflt int
		if add, err = parseInt(stage, fields[1]); err != nil {
			return
		}
		if dflt, err = parseInt(stage, fields[2]); err != nil {
			return
		}
		fn = anyOf(option.Match(option.Handlers[int, int]{
			Some: func(x int) int { return x + add },
			None: func() int { return dflt },
		}))
	case "toslice":
		if err = wantArgs(stage, fields, 0); err == nil {
			fn = anyOf(option.ToSlice[int])
		}
	default:
		err = parseErr(stage, fields[0], ErrUnknownStage, "see package documentation for valid stages")
	}
	return
}

func anyOf[R any](f func(Value) R) func(Value) any {
	return func(o Value) any { return f(o) }
}

// --- Arguments -------------------------------------------------------------

func wantArgs(stage int, fields []string, n int) error {
	if len(fields)-1 != n {
		return parseErr(stage, fields[0], ErrArgument, "expected %d argument(s), have %d", n, len(fields)-1)
	}
	return nil
}

func oneArg[T any](stage int, fields []string, parse func(int, string) (T, error)) (T, error) {
	if err := wantArgs(stage, fields, 1); err != nil {
		var zero T
		return zero, err
	}
	return parse(stage, fields[1])
}

func parseInt(stage int, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseErr(stage, s, ErrArgument, "expected an integer")
	}
	return n, nil
}

// parseOp parses +N, -N, *N or /N into a unary function.
func parseOp(stage int, s string) (func(int) int, error) {
	if len(s) < 2 || !strings.ContainsRune("+-*/", rune(s[0])) {
		return nil, parseErr(stage, s, ErrArgument, "expected an operation like +1")
	}
	n, err := parseInt(stage, s[1:])
	if err != nil {
		return nil, err
	}
	if s[0] == '/' && n == 0 {
		return nil, parseErr(stage, s, ErrArgument, "division by zero")
	}
	return func(x int) int { return op2(s[0], x, n) }, nil
}

func op2(op byte, x, y int) int {
	switch op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	}
	return x / y
}

// parseBinOp parses +, - or * into a binary function. Division is not offered,
// as the value folded in may be zero.
func parseBinOp(stage int, s string) (func(int, int) int, error) {
	if len(s) != 1 || !strings.ContainsRune("+-*", rune(s[0])) {
		return nil, parseErr(stage, s, ErrArgument, "expected one of +, -, *")
	}
	return func(acc, x int) int { return op2(s[0], acc, x) }, nil
}

// parseCmp parses <N, >N, =N or !=N into a predicate.
func parseCmp(stage int, s string) (func(int) bool, error) {
	var op string
	for _, prefix := range []string{"!=", "<", ">", "="} {
		if strings.HasPrefix(s, prefix) {
			op = prefix
			break
		}
	}
	if op == "" {
		return nil, parseErr(stage, s, ErrArgument, "expected a comparison like >1")
	}
	n, err := parseInt(stage, s[len(op):])
	if err != nil {
		return nil, err
	}
	switch op {
	case "<":
		return func(x int) bool { return x < n }, nil
	case ">":
		return func(x int) bool { return x > n }, nil
	case "=":
		return func(x int) bool { return x == n }, nil
	}
	return func(x int) bool { return x != n }, nil
}
