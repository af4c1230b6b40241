package main

import (
	"fmt"
	"os"

	"github.com/nakamasato/topicgraph/cmd"
	"github.com/nakamasato/topicgraph/internal/generator"
	"github.com/nakamasato/topicgraph/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Failure(err))
		os.Exit(generator.ExitCode(err))
	}
}
