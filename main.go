package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/recyclink/recyclink/cmd"
)

const version = "0.1.0"

func main() {
	root := cmd.NewRootCmd()

	// fang wraps the cobra root with shell completions, manpages,
	// --version, and signal handling.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
