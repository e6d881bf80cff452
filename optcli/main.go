package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/option"
	"github.com/npillmayer/option/internal/pipeline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'option.cli'
func tracer() tracing.Trace {
	return tracing.Select("option.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.option.cli":      "Info",
		"trace.option.pipeline": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)      // will set the correct level later
	pterm.Info.Println("Welcome to the Option CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("opt > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D, ask for help with 'help'")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("option.pipeline").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	last option.Option[pipeline.Result] // result of the most recent pipeline
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var commands = map[string]func(*Intp, string) bool{
	"quit":  quitCmd,
	"help":  helpCmd,
	"steps": stepsCmd,
}

// execute runs a built-in command or evaluates line as a pipeline.
func (intp *Intp) execute(line string) (quit bool) {
	word, arg, _ := strings.Cut(line, " ")
	if cmd, ok := commands[strings.ToLower(word)]; ok {
		tracer().Debugf("command %s(%q)", word, arg)
		return cmd(intp, strings.TrimSpace(arg))
	}
	r, err := pipeline.Eval(line)
	if err != nil {
		pterm.Error.Println(err)
		intp.last = option.None[pipeline.Result]()
		return false
	}
	intp.last = option.Some(r)
	printResult(r)
	return false
}

func quitCmd(intp *Intp, arg string) bool {
	pterm.Println("Goodbye!")
	return true
}

func stepsCmd(intp *Intp, arg string) bool {
	option.IfSome(printSteps)(intp.last)
	option.IfNone[pipeline.Result](func() {
		pterm.Error.Println("no pipeline evaluated yet")
	})(intp.last)
	return false
}
