package main

import (
	"fmt"
	"os"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/runtime/terminal"
	"github.com/de-tools/growth-scorecard/pkg/store"
)

func main() {
	registry, err := store.NewRegistry(clock.System(), 30)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
