package main

import (
	"os"

	"pstack.dev/pstack/internal/cli"
	"pstack.dev/pstack/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		output.NewSplog().Error("%v", err)
		os.Exit(1)
	}
}
