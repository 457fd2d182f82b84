package main

import (
	"os"

	"gflow.dev/gflow/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.HandleError(rootCmd.OutOrStdout(), err))
	}
}
