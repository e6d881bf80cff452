package main

import (
	"fmt"

	"github.com/npillmayer/option/internal/pipeline"
	"github.com/pterm/pterm"
)

func printResult(r pipeline.Result) {
	if o, ok := r.Final.(pipeline.Value); ok && o.IsNone() {
		pterm.Warning.Printf("=> %v\n", o)
		return
	}
	pterm.Success.Printf("=> %v\n", r.Final)
}

func printSteps(r pipeline.Result) {
	data := [][]string{
		{"#", "Stage", "Value"},
	}
	for i, step := range r.Steps {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			step.Stage,
			step.Value,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
