package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpCmd(intp *Intp, topic string) bool {
	help(topic)
	return false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "source", "sources":
		pterm.Info.Println("Sources")
		pterm.Println(`
	A pipeline starts with a source, producing an option of an integer:
	+-----------------------+--------------------------------------------+
	| some N                | present value N                            |
	| none                  | empty option                               |
	| nil                   | empty option, second form                  |
	| when true|false N     | Some(N) if the condition holds, else none  |
	| zip A B [C [D [E]]]   | sum of A…E if all are present, else none   |
	+-----------------------+--------------------------------------------+
	Arguments of zip are integers, 'none' or 'nil'.
	`)
	case "stage", "stages":
		pterm.Info.Println("Stages")
		pterm.Println(`
	Stages are separated by '|'. OP is +N, -N, *N or /N, CMP is <N, >N, =N or !=N.
	+-----------------------+--------------------------------------------+
	| map OP                | apply OP to a present value                |
	| chain OP              | like map, but negative results become nil  |
	| filter CMP            | keep a value satisfying CMP                |
	| filternot CMP         | keep a value not satisfying CMP            |
	| orelse N              | replace an empty option by Some(N)         |
	| tap                   | trace a present value                      |
	| flatten               | collapse Some(option) to option            |
	+-----------------------+--------------------------------------------+
	Terminal stages end a pipeline:
	+-----------------------+--------------------------------------------+
	| contains N            | true if the value is N                     |
	| exists CMP            | true if the value satisfies CMP            |
	| getorelse N           | the value, or N                            |
	| reduce N +|-|*        | N combined with the value, or N            |
	| match N M             | the value + N, or M                        |
	| toslice               | [value] or []                              |
	+-----------------------+--------------------------------------------+
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Enter a pipeline of option combinators, e.g.

	    some 3 | map +1 | filter >2 | getorelse 0

	Commands:
	    steps          show the intermediate options of the last pipeline
	    help sources   list pipeline sources
	    help stages    list pipeline stages
	    quit           leave the CLI
	`)
	}
}
