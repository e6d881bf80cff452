package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/option/internal/laws"
	"github.com/npillmayer/option/internal/pipeline"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("opt-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for evaluating option pipelines and checking option laws.")

	commando.
		Register("eval").
		SetDescription("Evaluate a pipeline of option combinators, e.g. 'some 3 | map +1 | getorelse 0'.").
		SetShortDescription("evaluate a pipeline").
		AddArgument("pipeline", "pipeline to evaluate (quote it to protect '|' from the shell)", "").
		AddFlag("steps,s", "print every intermediate option", commando.Bool, nil).
		SetAction(runEvalCommand)

	commando.
		Register("laws").
		SetDescription("Check functor, monad and absence laws against sample options.").
		SetShortDescription("check option laws").
		AddFlag("samples,n", "number of present sample values", commando.Int, 10).
		SetAction(runLawsCommand)

	commando.Parse(nil)
}

func runEvalCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	line := strings.TrimSpace(args["pipeline"].Value)
	if line == "" {
		fatalf("pipeline is required")
	}
	r, err := pipeline.Eval(line)
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["steps"], "steps") {
		for _, step := range r.Steps {
			fmt.Printf("%-24s %s\n", step.Stage, step.Value)
		}
	}
	fmt.Println(r)
}

func runLawsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	n := mustFlagInt(flags["samples"], "samples")
	if n < 0 {
		fatalf("invalid --samples flag: %d", n)
	}
	outcomes := laws.Check(laws.Samples(n))
	data := [][]string{
		{"Law", "Checked", "Result"},
	}
	failed := 0
	for _, o := range outcomes {
		result := "ok"
		if !o.Passed() {
			failed++
			result = "FAILED for " + strings.Join(o.Failures, ", ")
		}
		data = append(data, []string{o.Law, fmt.Sprintf("%d", o.Checked), result})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if failed > 0 {
		fatalf("%d law(s) violated", failed)
	}
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "opt-tools: "+format+"\n", args...)
	os.Exit(1)
}
